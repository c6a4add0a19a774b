package database

import (
	"fmt"
	"log"

	"api/config"
	"api/models"
	"api/utils"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

var DefaultAdminUsername = "admin"
var DefaultPassword = "admin"

// Discipline catalog seeded on first boot. Names drive the scoring
// family classification, so they must carry their family markers
var DefaultDisciplines = []string{
	"Tiro al Vuelo",
	"Escopeta Fosa",
	"Curso FBI",
	"Pistola Match",
	"Pistola Olimpica",
	"Silueta Metalica",
	"IPSC",
	"Liebre y Jabali",
	"Bench Rest",
	"Carabina 22",
}

// InitDB initializes the database connection, migrates the models and
// populates the database with default values if needed
func InitDB() {
	dsn := fmt.Sprintf("host=%s port=%s user=%s dbname=%s password=%s sslmode=disable TimeZone=America/La_Paz",
		config.PostgresHost, config.PostgresPort, config.PostgresUser, config.PostgresDB, config.PostgresPassword)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect database: ", err)
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.Club{},
		&models.Athlete{},
		&models.Document{},
		&models.Weapon{},
		&models.WeaponLoan{},
		&models.Discipline{},
		&models.Category{},
		&models.ShootingRange{},
		&models.Judge{},
		&models.Competition{},
		&models.CompetitionCategory{},
		&models.Expense{},
		&models.Registration{},
		&models.Entry{},
		&models.Result{},
		&models.Record{},
	)
	if err != nil {
		log.Fatal("failed to migrate database: ", err)
	}

	Populate()
}

// Populate populates the database with default values if needed
func Populate() {
	var countUser int64
	DB.Model(&models.User{}).Count(&countUser)
	if countUser == 0 {
		// Create default admin user with a password either from the
		// .env file or the DefaultPassword constant
		password := DefaultPassword
		if config.DefaultPassword != "" {
			password = config.DefaultPassword
		}

		password, err := utils.HashPassword(password)
		if err != nil {
			panic(err)
		}

		admin := models.User{
			Username: DefaultAdminUsername,
			Email:    "admin@admin.com",
			Password: password,
			Role:     models.RoleAdmin,
			IsActive: true,
		}
		DB.Create(&admin)
		log.Println("Default admin user created")
	}

	// Seed the discipline catalog on first boot
	var countDiscipline int64
	DB.Model(&models.Discipline{}).Count(&countDiscipline)
	if countDiscipline == 0 {
		for _, name := range DefaultDisciplines {
			DB.Create(&models.Discipline{Name: name})
		}
		log.Println("Default discipline catalog created")
	}
}
