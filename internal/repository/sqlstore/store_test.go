package sqlstore

import (
	"context"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medorahq/clinic-api/internal/model"
)

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	db, err := Open(Config{Driver: DriverSQLite, Path: ":memory:"})
	require.NoError(t, err)
	// A second connection would see a different empty in-memory database.
	db.SetMaxOpenConns(1)
	require.NoError(t, Migrate(context.Background(), db))

	t.Cleanup(func() { db.Close() })
	return db
}

func createPatient(t *testing.T, db *sqlx.DB, name, phone, dob string) *model.Patient {
	t.Helper()

	patient := &model.Patient{Name: name, Phone: phone, DOB: dob}
	require.NoError(t, NewPatientRepository(db).Create(context.Background(), patient))
	require.NotZero(t, patient.ID)
	return patient
}

func TestUserRepository(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &model.User{Username: "drsmith", PasswordHash: "hash", Role: model.RoleDoctor}
	require.NoError(t, repo.Create(ctx, user))
	assert.NotZero(t, user.ID)

	got, err := repo.GetByUsername(ctx, "drsmith")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, model.RoleDoctor, got.Role)
	assert.Equal(t, "hash", got.PasswordHash)

	_, err = repo.GetByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, ErrNotFound)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	dup := &model.User{Username: "drsmith", PasswordHash: "other", Role: model.RoleAdmin}
	assert.Error(t, repo.Create(ctx, dup))
}

func TestPatientListNewestFirst(t *testing.T) {
	db := newTestDB(t)
	repo := NewPatientRepository(db)
	ctx := context.Background()

	first := createPatient(t, db, "Alice", "555-0100", "1990-01-01")
	second := createPatient(t, db, "Bob", "", "")
	assert.Greater(t, second.ID, first.ID)

	patients, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, patients, 2)
	assert.Equal(t, "Bob", patients[0].Name)
	assert.Equal(t, "Alice", patients[1].Name)
}

func TestAppointmentListOrdersByDatetime(t *testing.T) {
	db := newTestDB(t)
	repo := NewAppointmentRepository(db)
	ctx := context.Background()

	patient := createPatient(t, db, "Alice", "", "")

	earlier := &model.Appointment{
		PatientID: patient.ID,
		Datetime:  time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
		Reason:    "checkup",
		Status:    model.AppointmentStatusScheduled,
	}
	later := &model.Appointment{
		PatientID: patient.ID,
		Datetime:  time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
		Reason:    "cleaning",
		Status:    model.AppointmentStatusScheduled,
	}
	require.NoError(t, repo.Create(ctx, later))
	require.NoError(t, repo.Create(ctx, earlier))

	appointments, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, appointments, 2)
	assert.Equal(t, "cleaning", appointments[0].Reason)
	assert.Equal(t, "checkup", appointments[1].Reason)
	assert.Equal(t, "Alice", appointments[0].PatientName)
}

func TestAppointmentRejectsUnknownPatient(t *testing.T) {
	db := newTestDB(t)
	repo := NewAppointmentRepository(db)

	err := repo.Create(context.Background(), &model.Appointment{
		PatientID: 9999,
		Datetime:  time.Now().UTC(),
		Status:    model.AppointmentStatusScheduled,
	})
	require.Error(t, err)
	assert.True(t, IsForeignKeyViolation(err))
}

func TestInvoiceDetail(t *testing.T) {
	db := newTestDB(t)
	repo := NewInvoiceRepository(db)
	ctx := context.Background()

	patient := createPatient(t, db, "Alice", "555-0100", "1990-01-01")

	invoice := &model.Invoice{
		PatientID:   patient.ID,
		Amount:      149.50,
		Status:      model.InvoiceStatusUnpaid,
		Description: "root canal",
	}
	require.NoError(t, repo.Create(ctx, invoice))

	detail, err := repo.GetDetail(ctx, invoice.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice", detail.PatientName)
	assert.Equal(t, "555-0100", detail.PatientPhone)
	assert.Equal(t, "1990-01-01", detail.PatientDOB)
	assert.Equal(t, 149.50, detail.Amount)

	_, err = repo.GetDetail(ctx, invoice.ID+1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestInvoiceListNewestFirst(t *testing.T) {
	db := newTestDB(t)
	repo := NewInvoiceRepository(db)
	ctx := context.Background()

	patient := createPatient(t, db, "Alice", "", "")

	for _, desc := range []string{"first", "second", "third"} {
		require.NoError(t, repo.Create(ctx, &model.Invoice{
			PatientID:   patient.ID,
			Amount:      10,
			Status:      model.InvoiceStatusUnpaid,
			Description: desc,
		}))
	}

	invoices, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, invoices, 3)
	assert.Equal(t, "third", invoices[0].Description)
	assert.Equal(t, "first", invoices[2].Description)
}

func TestClinicalRecordRepositories(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	patient := createPatient(t, db, "Alice", "", "")

	noteRepo := NewNoteRepository(db)
	note := &model.Note{PatientID: patient.ID, Note: "patient reports pain", CreatedBy: "drsmith"}
	require.NoError(t, noteRepo.Create(ctx, note))
	notes, err := noteRepo.List(ctx)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "Alice", notes[0].PatientName)
	assert.Equal(t, "drsmith", notes[0].CreatedBy)

	planRepo := NewTreatmentPlanRepository(db)
	plan := &model.TreatmentPlan{
		PatientID:     patient.ID,
		Diagnosis:     "caries",
		Plan:          "two fillings",
		EstimatedCost: 300,
		Status:        model.TreatmentPlanStatusProposed,
		CreatedBy:     "drsmith",
	}
	require.NoError(t, planRepo.Create(ctx, plan))
	plans, err := planRepo.List(ctx)
	require.NoError(t, err)
	require.Len(t, plans, 1)
	assert.Equal(t, model.TreatmentPlanStatusProposed, plans[0].Status)

	rxRepo := NewPrescriptionRepository(db)
	rx := &model.Prescription{
		PatientID:    patient.ID,
		Medication:   "amoxicillin",
		Dosage:       "500mg",
		Frequency:    "3x daily",
		Duration:     "7 days",
		PrescribedBy: "drsmith",
	}
	require.NoError(t, rxRepo.Create(ctx, rx))
	prescriptions, err := rxRepo.List(ctx)
	require.NoError(t, err)
	require.Len(t, prescriptions, 1)
	assert.Equal(t, "amoxicillin", prescriptions[0].Medication)
	assert.Equal(t, "Alice", prescriptions[0].PatientName)
}
