package services

import (
	"context"
	"fmt"
)

type seedPatient struct {
	name    string
	age     int
	gender  string
	contact string
}

type seedDoctor struct {
	name           string
	specialization string
	contact        string
}

var (
	demoPatients = []seedPatient{
		{name: "John Doe", age: 45, gender: "Male", contact: "555-0101"},
		{name: "Jane Smith", age: 32, gender: "Female", contact: "555-0102"},
	}
	demoDoctors = []seedDoctor{
		{name: "Dr. Alice Brown", specialization: "Cardiology", contact: "555-0201"},
		{name: "Dr. Bob White", specialization: "Dermatology", contact: "555-0202"},
	}
)

// SeedDemoData registers the demo patients and doctors used for a fresh session.
// On an empty registry this yields patients P1001, P1002 and doctors D501, D502.
func SeedDemoData(ctx context.Context, registry RegistryServiceContract) error {
	for _, p := range demoPatients {
		if _, err := registry.CreatePatient(ctx, p.name, p.age, p.gender, p.contact); err != nil {
			return fmt.Errorf("seeding patient %q: %w", p.name, err)
		}
	}
	for _, d := range demoDoctors {
		if _, err := registry.CreateDoctor(ctx, d.name, d.specialization, d.contact); err != nil {
			return fmt.Errorf("seeding doctor %q: %w", d.name, err)
		}
	}
	return nil
}
