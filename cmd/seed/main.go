package main

import (
	"context"
	"log"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"gymclub/internal/config"
	"gymclub/internal/db"
	"gymclub/internal/model"
	"gymclub/internal/repository"
	"gymclub/internal/service"
)

type seedMember struct {
	Name     string
	Email    string
	Password string
}

var demoMembers = []seedMember{
	{Name: "Ann Example", Email: "ann@example.com", Password: "pw123"},
	{Name: "Bob Trainer", Email: "bob@example.com", Password: "liftheavy"},
	{Name: "Cleo Runner", Email: "cleo@example.com", Password: "cardio4life"},
}

func main() {
	log.Println("Starting seed script...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(
		&model.Member{},
		&model.PaymentDetails{},
		&model.SupplementPurchase{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	memberRepo := repository.NewMemberRepository(gormDB)
	purchaseRepo := repository.NewSupplementPurchaseRepository(gormDB)
	membershipService := service.NewMembershipService(memberRepo, nil)
	supplementService := service.NewSupplementService(memberRepo, purchaseRepo)

	created := 0
	for _, sm := range demoMembers {
		existing, err := memberRepo.FindByEmail(ctx, sm.Email)
		if err == nil && existing != nil {
			log.Printf("Member %s already present, skipping", sm.Email)
			continue
		}
		if err != nil && err != gorm.ErrRecordNotFound {
			log.Fatalf("Failed to look up %s: %v", sm.Email, err)
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(sm.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("Failed to hash password: %v", err)
		}

		member := &model.Member{
			Name:         sm.Name,
			Email:        sm.Email,
			PasswordHash: string(hash),
		}
		if err := memberRepo.Create(ctx, member); err != nil {
			log.Fatalf("Failed to create member %s: %v", sm.Email, err)
		}
		created++

		// Give the first demo member an active yearly membership and a
		// purchase so the protected endpoints have data to return.
		if created == 1 {
			if _, err := membershipService.Purchase(ctx, member.ID, model.PlanYearly, "card"); err != nil {
				log.Fatalf("Failed to seed membership: %v", err)
			}
			if _, err := supplementService.Purchase(ctx, member.ID, "Whey Protein 1kg", decimal.NewFromInt(1499), 2); err != nil {
				log.Fatalf("Failed to seed supplement purchase: %v", err)
			}
		}
	}

	log.Printf("Seed complete, %d members created", created)
}
