package fixtures

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	authModels "prode-api/packages/auth/models"
	authUtils "prode-api/packages/auth/utils"
	"prode-api/packages/core/models"
	"prode-api/packages/core/repository"

	"gorm.io/gorm"
)

const fixturePassword = "password123"

type Fixtures struct {
	db  *gorm.DB
	now func() time.Time
}

func NewFixtures(db *gorm.DB) *Fixtures {
	return &Fixtures{db: db, now: time.Now}
}

type playedMatch struct {
	home, away string
	stage      string
	date       time.Time
	homeGoals  int
	awayGoals  int
}

type upcomingMatch struct {
	home, away string
	stage      string
	inDays     int
	hour       int
}

func kickoff(day, hour int) time.Time {
	return time.Date(2025, time.June, day, hour, 0, 0, 0, time.UTC)
}

// Opening round of the 2025 club world tournament.
var playedMatches = []playedMatch{
	{"Al Ahly", "Inter Miami", "Group A", kickoff(15, 0), 0, 0},
	{"Bayern Munich", "Auckland City", "Group C", kickoff(15, 16), 10, 0},
	{"Paris Saint-Germain", "Atlético Madrid", "Group B", kickoff(15, 19), 4, 0},
	{"Palmeiras", "Porto", "Group A", kickoff(15, 22), 0, 0},
	{"Botafogo", "Seattle Sounders", "Group B", kickoff(16, 2), 2, 1},
	{"Chelsea", "Los Angeles FC", "Group D", kickoff(16, 19), 2, 0},
	{"Boca Juniors", "Benfica", "Group C", kickoff(16, 22), 2, 2},
	{"Flamengo", "Espérance de Tunis", "Group D", kickoff(17, 1), 2, 0},
	{"Fluminense", "Borussia Dortmund", "Group F", kickoff(17, 16), 0, 0},
	{"River Plate", "Urawa Red Diamonds", "Group E", kickoff(17, 19), 3, 1},
	{"Ulsan HD", "Mamelodi Sundowns", "Group F", kickoff(17, 22), 0, 1},
	{"Monterrey", "Inter Milan", "Group E", kickoff(18, 1), 1, 1},
	{"Manchester City", "Wydad AC", "Group G", kickoff(18, 16), 2, 0},
	{"Real Madrid", "Al Hilal", "Group H", kickoff(18, 19), 1, 1},
	{"Pachuca", "Red Bull Salzburg", "Group H", kickoff(18, 22), 1, 2},
	{"Al Ain", "Juventus", "Group G", kickoff(19, 1), 0, 6},
}

// Scheduled relative to the generation date so the pool always has open matches.
var upcomingMatches = []upcomingMatch{
	{"Palmeiras", "Botafogo", "Round of 16", 1, 16},
	{"Benfica", "Chelsea", "Round of 16", 1, 20},
	{"Paris Saint-Germain", "Inter Miami", "Round of 16", 2, 16},
	{"Flamengo", "Bayern Munich", "Round of 16", 2, 20},
	{"Inter Milan", "Fluminense", "Round of 16", 3, 19},
	{"Manchester City", "Al Hilal", "Round of 16", 3, 23},
	{"Real Madrid", "Juventus", "Round of 16", 4, 19},
	{"Borussia Dortmund", "Monterrey", "Round of 16", 4, 23},
}

// GenerateTestData creates participants, the fixture with results and a set of predictions
func (f *Fixtures) GenerateTestData() error {
	log.Println("Starting fixtures generation...")

	users, err := f.generateUsers()
	if err != nil {
		return fmt.Errorf("failed to generate users: %w", err)
	}

	matches, err := f.generateMatches()
	if err != nil {
		return fmt.Errorf("failed to generate matches: %w", err)
	}

	predictions, err := f.generatePredictions(users, matches)
	if err != nil {
		return fmt.Errorf("failed to generate predictions: %w", err)
	}

	log.Println("Fixtures generated successfully!")
	log.Printf("Created %d users, %d matches and %d predictions", len(users), len(matches), predictions)
	return nil
}

func (f *Fixtures) generateUsers() ([]authModels.User, error) {
	people := []struct {
		username, first, last string
	}{
		{"admin", "Admin", "Prode"},
		{"lucia", "Lucía", "Fernández"},
		{"mateo", "Mateo", "González"},
		{"valentina", "Valentina", "Rodríguez"},
		{"santiago", "Santiago", "López"},
		{"camila", "Camila", "Martínez"},
		{"joaquin", "Joaquín", "Sánchez"},
		{"sofia", "Sofía", "Romero"},
		{"tomas", "", ""},
	}

	hashedPassword, err := authUtils.HashPassword(fixturePassword)
	if err != nil {
		return nil, err
	}

	users := make([]authModels.User, 0, len(people))
	for i, person := range people {
		user := authModels.User{
			Email:       fmt.Sprintf("%s@prode.local", person.username),
			Username:    person.username,
			FirstName:   person.first,
			LastName:    person.last,
			Password:    hashedPassword,
			Enabled:     true,
			NbConnexion: i + 1,
			Roles:       authModels.GetDefaultRoles(),
		}
		if person.username == "admin" {
			user.AddRole(authModels.RoleAdmin)
		}

		if err := f.db.Create(&user).Error; err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	return users, nil
}

func (f *Fixtures) generateMatches() ([]models.Match, error) {
	matches := make([]models.Match, 0, len(playedMatches)+len(upcomingMatches))

	for _, played := range playedMatches {
		home, away := played.homeGoals, played.awayGoals
		match := models.Match{
			HomeTeam:  played.home,
			AwayTeam:  played.away,
			MatchDate: played.date,
			Stage:     played.stage,
			HomeScore: &home,
			AwayScore: &away,
		}
		if err := f.db.Create(&match).Error; err != nil {
			return nil, err
		}
		matches = append(matches, match)
	}

	today := f.now().UTC().Truncate(24 * time.Hour)
	for _, upcoming := range upcomingMatches {
		match := models.Match{
			HomeTeam:  upcoming.home,
			AwayTeam:  upcoming.away,
			MatchDate: today.AddDate(0, 0, upcoming.inDays).Add(time.Duration(upcoming.hour) * time.Hour),
			Stage:     upcoming.stage,
		}
		if err := f.db.Create(&match).Error; err != nil {
			return nil, err
		}
		matches = append(matches, match)
	}

	return matches, nil
}

// generatePredictions lets every participant except the admin predict most matches.
func (f *Fixtures) generatePredictions(users []authModels.User, matches []models.Match) (int, error) {
	// Fixed seed so every run produces the same ranking
	rng := rand.New(rand.NewSource(2025)) // #nosec G404
	predictions := repository.NewPredictionRepository(f.db)
	ctx := context.Background()

	count := 0
	for _, user := range users {
		if user.HasRole(authModels.RoleAdmin) {
			continue
		}
		for _, match := range matches {
			// Roughly one match in six is left without prediction
			if rng.Intn(6) == 0 {
				continue
			}
			home, away := rng.Intn(4), rng.Intn(3)
			if match.HasResult() && rng.Intn(4) == 0 {
				home, away = *match.HomeScore, *match.AwayScore
			}
			if _, err := predictions.UpsertPrediction(ctx, user.ID, match.ID, home, away); err != nil {
				return count, err
			}
			count++
		}
	}

	return count, nil
}

func (f *Fixtures) ClearAllData() error {
	log.Println("Clearing all fixture data...")

	// Delete in correct order due to foreign key constraints
	tables := []interface{}{
		&models.Prediction{},
		&models.Match{},
		&authModels.RefreshToken{},
		&authModels.User{},
	}

	for _, table := range tables {
		if err := f.db.Where("1 = 1").Delete(table).Error; err != nil {
			return fmt.Errorf("failed to clear table %T: %w", table, err)
		}
	}

	// Reset auto-increment sequences to start from 1
	var statements []string
	switch f.db.Dialector.Name() {
	case "postgres":
		statements = []string{
			"ALTER SEQUENCE matches_id_seq RESTART WITH 1",
			"ALTER SEQUENCE predictions_id_seq RESTART WITH 1",
			"ALTER SEQUENCE refresh_tokens_id_seq RESTART WITH 1",
		}
	case "mysql":
		statements = []string{
			"ALTER TABLE matches AUTO_INCREMENT = 1",
			"ALTER TABLE predictions AUTO_INCREMENT = 1",
			"ALTER TABLE refresh_tokens AUTO_INCREMENT = 1",
		}
	}

	for _, statement := range statements {
		if err := f.db.Exec(statement).Error; err != nil {
			log.Printf("Warning: %s failed: %v", statement, err)
		}
	}

	log.Println("All fixture data cleared!")
	return nil
}
