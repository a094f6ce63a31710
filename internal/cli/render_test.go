package cli

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/caesar-dat-com/NAJU/internal/records"
	"github.com/caesar-dat-com/NAJU/internal/store"
)

func TestRenderPatientDetailGolden(t *testing.T) {
	p := records.Patient{
		Patient: store.Patient{
			ID:               "patient-0001",
			Name:             "Ana Ruiz",
			DocType:          "DNI",
			DocNumber:        "12345678",
			Insurer:          "ACME",
			BirthDate:        "1990-04-12",
			Sex:              "F",
			Phone:            "555-0101",
			Email:            "ana@example.com",
			Address:          "Calle 1 #2-3",
			EmergencyContact: "Luis Ruiz 555-0102",
			Notes:            "First visit",
			PhotoPath:        "patients/patient-0001/profile/profile_20250501_090002.png",
			CreatedAt:        "2025-05-01 09:00:00",
			UpdatedAt:        "2025-05-01 09:00:01",
		},
		PhotoAbsPath: "/data/NAJU/patients/patient-0001/profile/profile_20250501_090002.png",
	}

	var out bytes.Buffer
	renderPatientDetail(&out, p)

	g := goldie.New(t)
	g.Assert(t, "patient_detail", out.Bytes())
}

func TestRenderFileTableGolden(t *testing.T) {
	files := []records.FileRecord{
		{
			File: store.File{
				ID:        2,
				PatientID: "patient-0001",
				Kind:      store.KindAttachment,
				Filename:  "lab results.pdf",
				CreatedAt: "2025-05-01 09:00:04",
			},
			AbsPath: "/data/NAJU/patients/patient-0001/files/20250501_090003_lab results.pdf",
		},
		{
			File: store.File{
				ID:        1,
				PatientID: "patient-0001",
				Kind:      store.KindPhoto,
				Filename:  "face.png",
				CreatedAt: "2025-05-01 09:00:02",
			},
			AbsPath: "/data/NAJU/patients/patient-0001/profile/profile_20250501_090001.png",
		},
	}

	var out bytes.Buffer
	renderFileTable(&out, files)

	g := goldie.New(t)
	g.Assert(t, "file_table", out.Bytes())
}
