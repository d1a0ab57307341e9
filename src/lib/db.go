package lib

import (
	"log"
	"os"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

// ConnectDB initializes the SQLite connection and sets the global DB variable.
// Foreign keys are switched on so the declared OnDelete actions (cascades,
// SET NULL on notification post refs) are enforced by the database itself.
func ConnectDB() {
	var dbPath string = os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./pixnest.db"
	}

	var err error
	DB, err = gorm.Open(sqlite.Open(dbPath+"?_foreign_keys=on"), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		panic("Failed to connect to database: " + err.Error())
	}

	log.Println("Connected to SQLite!")
}
