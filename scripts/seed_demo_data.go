// Seeds a demo event with positions, slots, and registered volunteers, and
// prints an admin token plus the check-in links for each position.
//
// Usage: go run scripts/seed_demo_data.go
package main

import (
	"fmt"
	"log"
	"time"

	"volunteer-checkin-backend/internal/api/middleware"
	"volunteer-checkin-backend/internal/config"
	"volunteer-checkin-backend/internal/database"
	"volunteer-checkin-backend/internal/database/models"
	"volunteer-checkin-backend/internal/repository"
	"volunteer-checkin-backend/internal/service"

	"github.com/joho/godotenv"
)

type demoSlot struct {
	startHour  int
	endHour    int
	capacity   int
	volunteers []service.RosterEntry
}

type demoPosition struct {
	name      string
	startHour int
	endHour   int
	needed    int
	slots     []demoSlot
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		log.Fatal("Failed to initialize database:", err)
	}

	eventRepo := repository.NewEventRepository(db)
	positionRepo := repository.NewPositionRepository(db)
	slotRepo := repository.NewSlotRepository(db)
	volunteerRepo := repository.NewVolunteerRepository(db)
	slotVolunteerRepo := repository.NewSlotVolunteerRepository(db)
	roster := service.NewRosterService(volunteerRepo, slotVolunteerRepo)

	eventDate := time.Now().UTC().AddDate(0, 0, 7).Truncate(24 * time.Hour)

	event := &models.Event{
		Name:        "Community Spring Fair",
		Description: "Annual spring fair demo data",
		Date:        eventDate,
	}
	if err := eventRepo.Create(event); err != nil {
		log.Fatal("Failed to create event:", err)
	}

	positions := []demoPosition{
		{
			name: "Registration Desk", startHour: 9, endHour: 17, needed: 2,
			slots: []demoSlot{
				{startHour: 9, endHour: 13, capacity: 2, volunteers: []service.RosterEntry{
					{Email: "ann@example.com", Name: "Ann"},
					{Email: "ben@example.com", Name: "Ben"},
				}},
				{startHour: 13, endHour: 17, capacity: 2, volunteers: []service.RosterEntry{
					{Email: "cara@example.com", Name: "Cara"},
				}},
			},
		},
		{
			name: "Parking", startHour: 8, endHour: 12, needed: 1,
			slots: []demoSlot{
				{startHour: 8, endHour: 12, capacity: 1, volunteers: []service.RosterEntry{
					{Email: "dev@example.com", Name: "Dev"},
				}},
			},
		},
	}

	for _, p := range positions {
		position := &models.Position{
			EventID:          event.ID,
			Name:             p.name,
			StartTime:        eventDate.Add(time.Duration(p.startHour) * time.Hour),
			EndTime:          eventDate.Add(time.Duration(p.endHour) * time.Hour),
			VolunteersNeeded: p.needed,
		}
		if err := positionRepo.Create(position); err != nil {
			log.Fatal("Failed to create position:", err)
		}

		for _, s := range p.slots {
			start := eventDate.Add(time.Duration(s.startHour) * time.Hour)
			end := eventDate.Add(time.Duration(s.endHour) * time.Hour)
			slot := &models.Slot{
				PositionID: position.ID,
				StartTime:  &start,
				EndTime:    &end,
				Capacity:   s.capacity,
			}
			if err := slotRepo.Create(slot); err != nil {
				log.Fatal("Failed to create slot:", err)
			}
			if err := roster.Reconcile(slot.ID, s.volunteers); err != nil {
				log.Fatal("Failed to reconcile roster:", err)
			}
		}

		fmt.Printf("Position %q check-in link: %s/checkin?position_id=%s\n",
			p.name, cfg.CheckInBaseURL, position.ID)
	}

	token, err := middleware.GenerateToken("admin@example.com", cfg.JWTSecret, 24*time.Hour)
	if err != nil {
		log.Fatal("Failed to generate admin token:", err)
	}

	fmt.Printf("\nEvent %q seeded for %s\n", event.Name, eventDate.Format("2006-01-02"))
	fmt.Printf("Admin bearer token (24h): %s\n", token)
}
