package sqlite

import "database/sql"

// schema contains the SQL statements to set up the database schema.
// These run on startup to ensure tables exist.
// Amounts are integer cents; dates are ISO "YYYY-MM-DD" text.
// Parent tables must be created before the ledgers that reference them.
const schema = `
CREATE TABLE IF NOT EXISTS players (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    jersey_number TEXT,
    personal_balance_cents INTEGER NOT NULL DEFAULT 0,
    is_member INTEGER NOT NULL DEFAULT 0,
    created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS dining_records (
    id TEXT PRIMARY KEY,
    date TEXT NOT NULL,
    total_cents INTEGER NOT NULL,
    participant_count INTEGER NOT NULL,
    per_person_cents INTEGER NOT NULL,
    subsidy_cents INTEGER NOT NULL,
    cap_cents INTEGER NOT NULL,
    handler_name TEXT,
    restaurant_name TEXT,
    created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS matches (
    id TEXT PRIMARY KEY,
    date TEXT NOT NULL,
    opponent TEXT NOT NULL,
    type TEXT NOT NULL,
    league_name TEXT,
    our_score INTEGER,
    their_score INTEGER,
    result TEXT,
    cost_cents INTEGER NOT NULL DEFAULT 0,
    created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS attendances (
    match_id TEXT NOT NULL,
    player_id TEXT NOT NULL,
    goals INTEGER NOT NULL DEFAULT 0,
    assists INTEGER NOT NULL DEFAULT 0,
    fee_cents INTEGER NOT NULL DEFAULT 0,
    PRIMARY KEY (match_id, player_id),
    FOREIGN KEY (match_id) REFERENCES matches(id) ON DELETE CASCADE,
    FOREIGN KEY (player_id) REFERENCES players(id)
);

CREATE TABLE IF NOT EXISTS personal_transactions (
    id TEXT PRIMARY KEY,
    player_id TEXT NOT NULL,
    amount_cents INTEGER NOT NULL,
    category TEXT NOT NULL,
    description TEXT,
    date TEXT NOT NULL,
    dining_record_id TEXT,
    created_at INTEGER NOT NULL,
    FOREIGN KEY (player_id) REFERENCES players(id),
    FOREIGN KEY (dining_record_id) REFERENCES dining_records(id)
);

CREATE TABLE IF NOT EXISTS team_fund_transactions (
    id TEXT PRIMARY KEY,
    amount_cents INTEGER NOT NULL CHECK (amount_cents >= 0),
    type TEXT NOT NULL CHECK (type IN ('INCOME', 'EXPENSE')),
    category TEXT NOT NULL,
    description TEXT,
    handler_name TEXT,
    date TEXT NOT NULL,
    dining_record_id TEXT,
    source_match_id TEXT,
    created_at INTEGER NOT NULL,
    CHECK (dining_record_id IS NULL OR source_match_id IS NULL),
    FOREIGN KEY (dining_record_id) REFERENCES dining_records(id),
    FOREIGN KEY (source_match_id) REFERENCES matches(id)
);

CREATE TABLE IF NOT EXISTS member_fund_transactions (
    id TEXT PRIMARY KEY,
    total_cents INTEGER NOT NULL CHECK (total_cents >= 0),
    per_person_cents INTEGER,
    type TEXT NOT NULL CHECK (type IN ('INCOME', 'EXPENSE')),
    description TEXT,
    date TEXT NOT NULL,
    match_id TEXT,
    created_at INTEGER NOT NULL,
    FOREIGN KEY (match_id) REFERENCES matches(id)
);

CREATE TABLE IF NOT EXISTS member_fund_payers (
    transaction_id TEXT NOT NULL,
    player_id TEXT NOT NULL,
    PRIMARY KEY (transaction_id, player_id),
    FOREIGN KEY (transaction_id) REFERENCES member_fund_transactions(id) ON DELETE CASCADE,
    FOREIGN KEY (player_id) REFERENCES players(id)
);

CREATE INDEX IF NOT EXISTS idx_attendances_match_id ON attendances(match_id);
CREATE INDEX IF NOT EXISTS idx_personal_player_id ON personal_transactions(player_id);
CREATE INDEX IF NOT EXISTS idx_personal_dining_id ON personal_transactions(dining_record_id);
CREATE INDEX IF NOT EXISTS idx_team_fund_dining_id ON team_fund_transactions(dining_record_id);
CREATE INDEX IF NOT EXISTS idx_team_fund_match_id ON team_fund_transactions(source_match_id);
CREATE INDEX IF NOT EXISTS idx_member_fund_match_id ON member_fund_transactions(match_id);
CREATE INDEX IF NOT EXISTS idx_member_fund_payers_tx ON member_fund_payers(transaction_id);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
