package config

import (
	"database/sql"
	"log"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

var DB *sql.DB

// InitDB opens the MySQL pool. The DSN needs parseTime=true so
// DATETIME columns scan into time.Time.
func InitDB() {
	dsn := GetEnv("DB_DSN", "helpdesk:helpdesk@tcp(localhost:3306)/helpdesk?parseTime=true")

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		log.Fatal("MySQL open failed:", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		log.Fatal("MySQL connection failed:", err)
	}

	DB = db
	log.Println("MySQL connected")
}

func CloseDB() {
	if DB != nil {
		DB.Close()
	}
}
