package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"complaintgo/backend/internal/config"
	"complaintgo/backend/internal/storage"
)

func main() {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	storageSvc := storage.NewStorageService(db, nil) // No redis needed for admin CLI

	if len(os.Args) < 2 {
		fmt.Println("Usage: admin <command> [args]")
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "list":
		if err := listComplaints(storageSvc); err != nil {
			log.Fatalf("Error listing complaints: %v", err)
		}
	case "show":
		if len(os.Args) != 3 {
			fmt.Println("Usage: admin show <complaint_id>")
			os.Exit(1)
		}
		complaintID, err := strconv.Atoi(os.Args[2])
		if err != nil {
			fmt.Println("Invalid complaint ID. Please provide an integer.")
			os.Exit(1)
		}
		if err := showComplaint(storageSvc, uint(complaintID)); err != nil {
			log.Fatalf("Error showing complaint: %v", err)
		}
	default:
		fmt.Println("Unknown command")
		os.Exit(1)
	}
}

func listComplaints(s storage.Storage) error {
	complaints, err := s.ListComplaints()
	if err != nil {
		return err
	}
	for i := range complaints {
		c := &complaints[i]
		fmt.Printf("#%d  %s  %s  %s  %s\n",
			c.ID, c.Timestamp.Format(config.TimestampLayout), c.Name, c.Email, c.Product)
	}
	fmt.Printf("%d complaint(s) total.\n", len(complaints))
	return nil
}

func showComplaint(s storage.Storage, id uint) error {
	c, err := s.GetComplaintByID(id)
	if err != nil {
		return err
	}
	fmt.Printf("Complaint #%d (%s)\n", c.ID, c.Timestamp.Format(config.TimestampLayout))
	fmt.Printf("Name:    %s\n", c.Name)
	fmt.Printf("Email:   %s\n", c.Email)
	fmt.Printf("Phone:   %s\n", c.Phone)
	fmt.Printf("Product: %s\n", c.Product)
	fmt.Printf("\nIssue:\n%s\n", c.Issue)
	fmt.Printf("\nSummary:\n%s\n", c.SummarizedIssue)
	return nil
}
