package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/hoshinonyaruko/snake-sim/structs"
	_ "github.com/mattn/go-sqlite3"
)

// 只记录本进程内结束的每一局，默认使用内存数据库，不跨进程保存
const createRunsTableSQL = `
CREATE TABLE IF NOT EXISTS Runs (
    RunID TEXT PRIMARY KEY,
    Score INTEGER,
    Length INTEGER,
    Ticks INTEGER,
    EndedAt INTEGER
);
`

const createRunsIndexSQL = `
CREATE INDEX IF NOT EXISTS idx_runs_score ON Runs (Score DESC);
`

func executeSQL(db *sql.DB, sqlStatement string) error {
	_, err := db.Exec(sqlStatement)
	if err != nil {
		return fmt.Errorf("executing SQL statement %q: %w", sqlStatement, err)
	}
	return nil
}

// Open 打开数据库并建表。":memory:" 时只保留一个连接，否则每个连接都是一个新库。
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	if err := InitializeDatabase(db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func InitializeDatabase(db *sql.DB) error {
	if err := executeSQL(db, createRunsTableSQL); err != nil {
		return err
	}
	return executeSQL(db, createRunsIndexSQL)
}

// RecordRun 保存一局的结果，同一局重复保存时覆盖
func RecordRun(db *sql.DB, run structs.RunRecord) error {
	// 开启事务
	tx, err := db.Begin()
	if err != nil {
		return err
	}

	_, err = tx.Exec("INSERT OR REPLACE INTO Runs (RunID, Score, Length, Ticks, EndedAt) VALUES (?, ?, ?, ?, ?)",
		run.RunID, run.Score, run.Length, run.Ticks, run.EndedAt)
	if err != nil {
		tx.Rollback()
		return err
	}

	// 提交事务
	return tx.Commit()
}

// TopRuns 按分数从高到低返回最多limit局
func TopRuns(db *sql.DB, limit int) ([]structs.RunRecord, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := db.Query("SELECT RunID, Score, Length, Ticks, EndedAt FROM Runs ORDER BY Score DESC, EndedAt ASC LIMIT ?", limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	runs := []structs.RunRecord{}
	for rows.Next() {
		var run structs.RunRecord
		if err := rows.Scan(&run.RunID, &run.Score, &run.Length, &run.Ticks, &run.EndedAt); err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// CountRuns 返回已经记录的局数
func CountRuns(db *sql.DB) (int, error) {
	var n int
	err := db.QueryRow("SELECT COUNT(*) FROM Runs").Scan(&n)
	return n, err
}
