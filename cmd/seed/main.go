package main

import (
	"fmt"
	"os"

	"fintrack/internal/config"
	"fintrack/internal/database"
	"fintrack/internal/logger"
	"fintrack/internal/models"
)

// defaultCategories is the seed set referenced by new installations.
// Seeding is idempotent: existing (name, type) pairs are left untouched.
var defaultCategories = []models.Category{
	// Expense categories
	{Name: "Food & Dining", Type: models.CategoryTypeExpense, Icon: "🍔", Color: "#FF6B6B"},
	{Name: "Transportation", Type: models.CategoryTypeExpense, Icon: "🚗", Color: "#4ECDC4"},
	{Name: "Shopping", Type: models.CategoryTypeExpense, Icon: "🛍️", Color: "#95E1D3"},
	{Name: "Entertainment", Type: models.CategoryTypeExpense, Icon: "🎮", Color: "#FFE66D"},
	{Name: "Bills", Type: models.CategoryTypeExpense, Icon: "💡", Color: "#F38181"},
	{Name: "Other", Type: models.CategoryTypeExpense, Icon: "📌", Color: "#9E9E9E"},

	// Income categories
	{Name: "Salary", Type: models.CategoryTypeIncome, Icon: "💰", Color: "#4CAF50"},
	{Name: "Freelance", Type: models.CategoryTypeIncome, Icon: "💻", Color: "#9C27B0"},
	{Name: "Business", Type: models.CategoryTypeIncome, Icon: "💼", Color: "#2196F3"},
	{Name: "Other", Type: models.CategoryTypeIncome, Icon: "💵", Color: "#607D8B"},
}

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Seed error: %v", err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	dbManager, err := database.NewManager(cfg)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer func() {
		if closeErr := dbManager.Close(); closeErr != nil {
			logger.Get().Warnf("failed to close database: %v", closeErr)
		}
	}()

	db := dbManager.DB()
	for _, category := range defaultCategories {
		result := db.Where("name = ? AND type = ?", category.Name, category.Type).
			FirstOrCreate(&models.Category{}, category)
		if result.Error != nil {
			return fmt.Errorf("failed to seed category %q: %w", category.Name, result.Error)
		}
		if result.RowsAffected > 0 {
			logger.Get().Infof("Seeded category %s (%s)", category.Name, category.Type)
		}
	}

	logger.Get().Info("Category seed completed")
	return nil
}
