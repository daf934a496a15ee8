package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"clinic-record-service/internal/domain/entities"
	"clinic-record-service/internal/services"
)

// Console is the line-oriented interactive front end over the registry.
type Console struct {
	registry services.RegistryServiceContract
	in       *bufio.Scanner
	out      io.Writer
	logger   zerolog.Logger
}

type menuItem struct {
	label  string
	action func(ctx context.Context) error
}

func New(registry services.RegistryServiceContract, in io.Reader, out io.Writer, logger zerolog.Logger) *Console {
	return &Console{
		registry: registry,
		in:       bufio.NewScanner(in),
		out:      out,
		logger:   logger.With().Str("component", "console").Logger(),
	}
}

// Run drives the main menu until the user exits or input ends.
func (c *Console) Run(ctx context.Context) error {
	err := c.menu(ctx, "Clinic Management System", "Exit", []menuItem{
		{"Patients", c.patientsMenu},
		{"Doctors", c.doctorsMenu},
		{"Appointments", c.appointmentsMenu},
		{"Medical Record", c.medicalRecordMenu},
	})
	if errors.Is(err, io.EOF) {
		c.logger.Debug().Msg("input closed")
		return nil
	}
	if err == nil {
		c.printf("Goodbye.\n")
	}
	return err
}

// menu repeatedly shows items numbered from 1, with 0 leaving the menu.
func (c *Console) menu(ctx context.Context, title, leave string, items []menuItem) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		c.printf("\n=== %s ===\n", title)
		for i, item := range items {
			c.printf("%d. %s\n", i+1, item.label)
		}
		c.printf("0. %s\n", leave)

		choice, err := c.promptInt("Choose an option: ")
		if err != nil {
			return err
		}
		if choice == 0 {
			return nil
		}
		if choice < 0 || choice > len(items) {
			c.printf("Invalid choice.\n")
			continue
		}
		if err := items[choice-1].action(ctx); err != nil {
			return err
		}
	}
}

func (c *Console) patientsMenu(ctx context.Context) error {
	return c.menu(ctx, "Patients", "Back", []menuItem{
		{"Add patient", c.addPatient},
		{"List patients", c.listPatients},
		{"Find patient by ID", c.findPatient},
	})
}

func (c *Console) doctorsMenu(ctx context.Context) error {
	return c.menu(ctx, "Doctors", "Back", []menuItem{
		{"Add doctor", c.addDoctor},
		{"List doctors", c.listDoctors},
		{"Find doctor by ID", c.findDoctor},
	})
}

func (c *Console) appointmentsMenu(ctx context.Context) error {
	return c.menu(ctx, "Appointments", "Back", []menuItem{
		{"Schedule appointment", c.scheduleAppointment},
		{"List all appointments", c.listAppointments},
		{"List appointments by doctor", c.listAppointmentsByDoctor},
		{"List appointments by patient", c.listAppointmentsByPatient},
		{"Update appointment status", c.updateAppointmentStatus},
	})
}

func (c *Console) medicalRecordMenu(ctx context.Context) error {
	return c.menu(ctx, "Medical Record", "Back", []menuItem{
		{"View patient history", c.viewHistory},
		{"Add history note", c.addNote},
	})
}

func (c *Console) addPatient(ctx context.Context) error {
	name, err := c.promptText("Name: ")
	if err != nil {
		return err
	}
	age, err := c.promptInt("Age: ")
	if err != nil {
		return err
	}
	gender, err := c.promptText("Gender: ")
	if err != nil {
		return err
	}
	contact, err := c.promptText("Contact: ")
	if err != nil {
		return err
	}
	patient, err := c.registry.CreatePatient(ctx, name, age, gender, contact)
	if err != nil {
		return c.report(err)
	}
	c.printf("Patient added with ID %s.\n", patient.ID)
	return nil
}

func (c *Console) listPatients(ctx context.Context) error {
	patients, err := c.registry.ListPatients(ctx)
	if err != nil {
		return c.report(err)
	}
	if len(patients) == 0 {
		c.printf("No patients registered.\n")
		return nil
	}
	for _, p := range patients {
		c.printPatient(p)
	}
	return nil
}

func (c *Console) findPatient(ctx context.Context) error {
	id, err := c.promptText("Patient ID: ")
	if err != nil {
		return err
	}
	patient, ok := c.registry.FindPatientByID(ctx, id)
	if !ok {
		c.printf("Patient not found.\n")
		return nil
	}
	c.printPatient(patient)
	return nil
}

func (c *Console) addDoctor(ctx context.Context) error {
	name, err := c.promptText("Name: ")
	if err != nil {
		return err
	}
	specialization, err := c.promptText("Specialization: ")
	if err != nil {
		return err
	}
	contact, err := c.promptText("Contact: ")
	if err != nil {
		return err
	}
	doctor, err := c.registry.CreateDoctor(ctx, name, specialization, contact)
	if err != nil {
		return c.report(err)
	}
	c.printf("Doctor added with ID %s.\n", doctor.ID)
	return nil
}

func (c *Console) listDoctors(ctx context.Context) error {
	doctors, err := c.registry.ListDoctors(ctx)
	if err != nil {
		return c.report(err)
	}
	if len(doctors) == 0 {
		c.printf("No doctors registered.\n")
		return nil
	}
	for _, d := range doctors {
		c.printDoctor(d)
	}
	return nil
}

func (c *Console) findDoctor(ctx context.Context) error {
	id, err := c.promptText("Doctor ID: ")
	if err != nil {
		return err
	}
	doctor, ok := c.registry.FindDoctorByID(ctx, id)
	if !ok {
		c.printf("Doctor not found.\n")
		return nil
	}
	c.printDoctor(doctor)
	return nil
}

func (c *Console) scheduleAppointment(ctx context.Context) error {
	patientID, err := c.promptText("Patient ID: ")
	if err != nil {
		return err
	}
	doctorID, err := c.promptText("Doctor ID: ")
	if err != nil {
		return err
	}
	date, err := c.promptText("Date (YYYY-MM-DD): ")
	if err != nil {
		return err
	}
	timeOfDay, err := c.promptText("Time: ")
	if err != nil {
		return err
	}
	appointment, err := c.registry.ScheduleAppointment(ctx, patientID, doctorID, date, timeOfDay)
	if err != nil {
		return c.report(err)
	}
	c.printf("Appointment scheduled with ID %s.\n", appointment.ID)
	return nil
}

func (c *Console) listAppointments(ctx context.Context) error {
	appointments, err := c.registry.ListAppointments(ctx)
	if err != nil {
		return c.report(err)
	}
	c.printAppointments(appointments)
	return nil
}

func (c *Console) listAppointmentsByDoctor(ctx context.Context) error {
	id, err := c.promptText("Doctor ID: ")
	if err != nil {
		return err
	}
	appointments, err := c.registry.ListAppointmentsByDoctor(ctx, id)
	if err != nil {
		return c.report(err)
	}
	c.printAppointments(appointments)
	return nil
}

func (c *Console) listAppointmentsByPatient(ctx context.Context) error {
	id, err := c.promptText("Patient ID: ")
	if err != nil {
		return err
	}
	appointments, err := c.registry.ListAppointmentsByPatient(ctx, id)
	if err != nil {
		return c.report(err)
	}
	c.printAppointments(appointments)
	return nil
}

func (c *Console) updateAppointmentStatus(ctx context.Context) error {
	id, err := c.promptText("Appointment ID: ")
	if err != nil {
		return err
	}
	status, err := c.promptText("New status (Scheduled/Completed/Cancelled): ")
	if err != nil {
		return err
	}
	appointment, err := c.registry.UpdateAppointmentStatus(ctx, id, status)
	if err != nil {
		return c.report(err)
	}
	c.printf("Appointment %s is now %s.\n", appointment.ID, appointment.Status)
	return nil
}

func (c *Console) viewHistory(ctx context.Context) error {
	id, err := c.promptText("Patient ID: ")
	if err != nil {
		return err
	}
	history, err := c.registry.GetPatientHistory(ctx, id)
	if err != nil {
		return c.report(err)
	}
	c.printf("Medical history for %s:\n", strings.ToUpper(strings.TrimSpace(id)))
	for _, note := range history {
		c.printf("  %d. %s\n", note.Seq, note.Text)
	}
	return nil
}

func (c *Console) addNote(ctx context.Context) error {
	id, err := c.promptText("Patient ID: ")
	if err != nil {
		return err
	}
	text, err := c.promptText("Note: ")
	if err != nil {
		return err
	}
	if _, err := c.registry.AddPatientNote(ctx, id, text); err != nil {
		return c.report(err)
	}
	c.printf("Note added.\n")
	return nil
}

// report prints domain errors for the user and keeps the session alive.
// Anything else ends the session.
func (c *Console) report(err error) error {
	var verr *entities.ValidationError
	var rerr *entities.ReferenceError
	switch {
	case errors.As(err, &rerr):
		c.printf("Error: %s (%s).\n", capitalize(rerr.Error()), rerr.ID)
		return nil
	case errors.As(err, &verr):
		c.printf("Error: %s.\n", verr.Error())
		return nil
	default:
		c.logger.Error().Err(err).Msg("registry operation failed")
		return err
	}
}

// promptText re-prompts until a non-empty line is entered.
func (c *Console) promptText(prompt string) (string, error) {
	for {
		c.printf("%s", prompt)
		line, err := c.readLine()
		if err != nil {
			return "", err
		}
		if line != "" {
			return line, nil
		}
		c.printf("Input cannot be empty.\n")
	}
}

// promptInt re-prompts until an integer is entered.
func (c *Console) promptInt(prompt string) (int, error) {
	for {
		c.printf("%s", prompt)
		line, err := c.readLine()
		if err != nil {
			return 0, err
		}
		n, convErr := strconv.Atoi(line)
		if line != "" && convErr == nil {
			return n, nil
		}
		c.printf("Please enter a valid number.\n")
	}
}

func (c *Console) readLine() (string, error) {
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", fmt.Errorf("reading input: %w", err)
		}
		return "", io.EOF
	}
	return strings.TrimSpace(c.in.Text()), nil
}

func (c *Console) printPatient(p *entities.Patient) {
	c.printf("%s | %s | Age %d | %s | %s\n", p.ID, p.Name, p.Age, p.Gender, p.Contact)
}

func (c *Console) printDoctor(d *entities.Doctor) {
	c.printf("%s | %s | %s | %s\n", d.ID, d.Name, d.Specialization, d.Contact)
}

func (c *Console) printAppointments(appointments []*entities.Appointment) {
	if len(appointments) == 0 {
		c.printf("No appointments found.\n")
		return
	}
	for _, a := range appointments {
		patientName, doctorName := a.PatientID, a.DoctorID
		if a.Patient != nil {
			patientName = a.Patient.Name
		}
		if a.Doctor != nil {
			doctorName = a.Doctor.Name
		}
		c.printf("%s | %s with %s | %s %s | %s\n", a.ID, patientName, doctorName, a.Date, a.Time, a.Status)
	}
}

func (c *Console) printf(format string, args ...interface{}) {
	fmt.Fprintf(c.out, format, args...)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
