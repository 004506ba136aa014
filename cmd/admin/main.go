// Package main runs the terminal curriculum browser.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rpggio/curriculum/internal/config"
	"github.com/rpggio/curriculum/internal/domain/curriculum"
	"github.com/rpggio/curriculum/internal/sqlite"
	"github.com/rpggio/curriculum/internal/tui"
)

func main() {
	var sample bool
	flag.BoolVar(&sample, "sample", false, "browse the built-in sample instead of the database")
	flag.Parse()

	journeys, err := loadJourneys(sample)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(tui.NewBrowser(journeys), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func loadJourneys(sample bool) ([]curriculum.Journey, error) {
	if sample {
		return curriculum.BuildSampleCurriculum(curriculum.NewAllocator())
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	db, err := sqlite.Open(cfg.DB.Path)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	// The browser only reads, so the service runs without a seed log.
	svc := curriculum.NewService(sqlite.NewCurriculumRepository(db), nil, nil)
	return svc.Journeys(context.Background())
}
