package journal

const Schema = `
CREATE TABLE IF NOT EXISTS executions (
	exec_id TEXT PRIMARY KEY,
	symbol TEXT NOT NULL,
	side TEXT NOT NULL,
	quantity REAL NOT NULL,
	price REAL NOT NULL,
	filled_time DATETIME NOT NULL,
	commission REAL NOT NULL,
	fees REAL NOT NULL
);

CREATE TABLE IF NOT EXISTS trades (
	trade_id TEXT PRIMARY KEY,
	symbol TEXT NOT NULL,
	direction TEXT NOT NULL,
	quantity REAL NOT NULL,
	entry_price REAL NOT NULL,
	exit_price REAL NOT NULL,
	open_time DATETIME NOT NULL,
	close_time DATETIME NOT NULL,
	commission REAL NOT NULL,
	fees REAL NOT NULL,
	realized_pl REAL NOT NULL,
	tags TEXT NOT NULL,
	notes TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS open_lots (
	symbol TEXT NOT NULL,
	direction TEXT NOT NULL,
	quantity REAL NOT NULL,
	price REAL NOT NULL,
	open_time DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_executions_filled_time ON executions(filled_time);
CREATE INDEX IF NOT EXISTS idx_trades_close_time ON trades(close_time);
`
