package records

import (
	"context"
	"fmt"
	"strings"

	"github.com/caesar-dat-com/NAJU/internal/paths"
	"github.com/caesar-dat-com/NAJU/internal/store"
)

// List returns all patients, most recently updated first. A non-empty
// filter restricts the result to substring matches on name, document
// number, insurer, or emergency contact.
func (s *Service) List(ctx context.Context, filter string) ([]Patient, error) {
	st, err := s.open()
	if err != nil {
		return nil, err
	}
	defer st.Close()

	rows, err := st.ListPatients(ctx, filter)
	if err != nil {
		return nil, err
	}

	patients := make([]Patient, 0, len(rows))
	for _, row := range rows {
		patients = append(patients, s.annotate(row))
	}
	return patients, nil
}

// Get returns one patient by ID.
func (s *Service) Get(ctx context.Context, id string) (Patient, error) {
	st, err := s.open()
	if err != nil {
		return Patient{}, err
	}
	defer st.Close()

	row, err := st.GetPatient(ctx, id)
	if err != nil {
		return Patient{}, err
	}
	return s.annotate(row), nil
}

// Create validates and persists a new patient, assigning a fresh
// identifier and setting created_at = updated_at. The patient's folder
// structure is provisioned as a side effect.
func (s *Service) Create(ctx context.Context, input PatientInput) (Patient, error) {
	clean := cleanInput(input)
	if clean.Name == "" {
		return Patient{}, newValidationError("name", "name is required")
	}

	st, err := s.open()
	if err != nil {
		return Patient{}, err
	}
	defer st.Close()

	now := s.rowStamp()
	row := store.Patient{
		ID:               s.newID(),
		Name:             clean.Name,
		DocType:          clean.DocType,
		DocNumber:        clean.DocNumber,
		Insurer:          clean.Insurer,
		BirthDate:        clean.BirthDate,
		Sex:              clean.Sex,
		Phone:            clean.Phone,
		Email:            clean.Email,
		Address:          clean.Address,
		EmergencyContact: clean.EmergencyContact,
		Notes:            clean.Notes,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := st.InsertPatient(ctx, row); err != nil {
		return Patient{}, err
	}

	if err := paths.EnsurePatientDirs(s.Base, row.ID); err != nil {
		return Patient{}, fmt.Errorf("provision patient folders: %w", err)
	}

	return s.annotate(row), nil
}

// Update overwrites every mutable field of an existing patient and
// refreshes updated_at. There is no partial merge: the caller resends the
// full field set.
func (s *Service) Update(ctx context.Context, id string, input PatientInput) (Patient, error) {
	clean := cleanInput(input)
	if clean.Name == "" {
		return Patient{}, newValidationError("name", "name is required")
	}

	st, err := s.open()
	if err != nil {
		return Patient{}, err
	}
	defer st.Close()

	err = st.UpdatePatient(ctx, store.Patient{
		ID:               id,
		Name:             clean.Name,
		DocType:          clean.DocType,
		DocNumber:        clean.DocNumber,
		Insurer:          clean.Insurer,
		BirthDate:        clean.BirthDate,
		Sex:              clean.Sex,
		Phone:            clean.Phone,
		Email:            clean.Email,
		Address:          clean.Address,
		EmergencyContact: clean.EmergencyContact,
		Notes:            clean.Notes,
		UpdatedAt:        s.rowStamp(),
	})
	if err != nil {
		return Patient{}, err
	}

	row, err := st.GetPatient(ctx, id)
	if err != nil {
		return Patient{}, err
	}
	return s.annotate(row), nil
}

// Delete removes the patient row; its file index rows cascade with it.
// Physical files under the patient's folder are retained deliberately:
// orphaned artifacts stay on disk for audit and recovery.
func (s *Service) Delete(ctx context.Context, id string) error {
	st, err := s.open()
	if err != nil {
		return err
	}
	defer st.Close()

	return st.DeletePatient(ctx, id)
}

// cleanInput trims every field; optional fields that are empty after
// trimming stay empty strings.
func cleanInput(input PatientInput) PatientInput {
	return PatientInput{
		Name:             strings.TrimSpace(input.Name),
		DocType:          strings.TrimSpace(input.DocType),
		DocNumber:        strings.TrimSpace(input.DocNumber),
		Insurer:          strings.TrimSpace(input.Insurer),
		BirthDate:        strings.TrimSpace(input.BirthDate),
		Sex:              strings.TrimSpace(input.Sex),
		Phone:            strings.TrimSpace(input.Phone),
		Email:            strings.TrimSpace(input.Email),
		Address:          strings.TrimSpace(input.Address),
		EmergencyContact: strings.TrimSpace(input.EmergencyContact),
		Notes:            strings.TrimSpace(input.Notes),
	}
}
