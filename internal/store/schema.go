package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS habits (
    name                 TEXT PRIMARY KEY,
    position             INTEGER NOT NULL,
    category             TEXT NOT NULL DEFAULT '',
    description          TEXT NOT NULL DEFAULT '',
    created_date         TEXT NOT NULL,
    target_frequency     TEXT NOT NULL DEFAULT 'daily'
);

CREATE TABLE IF NOT EXISTS completions (
    habit_name           TEXT NOT NULL REFERENCES habits(name) ON DELETE CASCADE,
    day                  TEXT NOT NULL,
    PRIMARY KEY (habit_name, day)
);

CREATE INDEX IF NOT EXISTS idx_habits_position ON habits(position);
CREATE INDEX IF NOT EXISTS idx_completions_day ON completions(day);
`
