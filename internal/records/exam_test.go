package records

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caesar-dat-com/NAJU/internal/store"
)

func TestCreateExam_WritesTimestampedFile(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	p, err := svc.Create(ctx, PatientInput{Name: "Ana Ruiz"})
	require.NoError(t, err)

	rec, err := svc.CreateExam(ctx, p.ID, json.RawMessage(`{"mood":"stable"}`))
	require.NoError(t, err)

	name := filepath.Base(rec.AbsPath)
	assert.True(t, strings.HasPrefix(name, "emf_"), "exam file name = %q", name)
	assert.True(t, strings.HasSuffix(name, ".json"))
	assert.True(t, strings.HasPrefix(rec.StoredRelPath, "patients/"+p.ID+"/exams/"))

	_, err = os.Stat(rec.AbsPath)
	require.NoError(t, err)
}

func TestCreateExam_IndexesRowWithSubtype(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	p, err := svc.Create(ctx, PatientInput{Name: "Ana Ruiz"})
	require.NoError(t, err)

	rec, err := svc.CreateExam(ctx, p.ID, json.RawMessage(`{"mood":"stable"}`))
	require.NoError(t, err)

	assert.Equal(t, store.KindExam, rec.Kind)

	var meta map[string]string
	require.NoError(t, json.Unmarshal([]byte(rec.MetaJSON), &meta))
	assert.Equal(t, "formal_mental_exam", meta["exam_type"])
}

func TestCreateExam_PayloadPassedThroughVerbatim(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	p, err := svc.Create(ctx, PatientInput{Name: "Ana Ruiz"})
	require.NoError(t, err)

	// Arbitrary shape: the writer never inspects the payload.
	payload := json.RawMessage(`{"anything":[1,2,3],"nested":{"deep":true}}`)
	rec, err := svc.CreateExam(ctx, p.ID, payload)
	require.NoError(t, err)

	content, err := os.ReadFile(rec.AbsPath)
	require.NoError(t, err)

	var doc struct {
		Type      string          `json:"type"`
		PatientID string          `json:"patient_id"`
		CreatedAt string          `json:"created_at"`
		Data      json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(content, &doc))
	assert.Equal(t, "formal_mental_exam", doc.Type)
	assert.Equal(t, p.ID, doc.PatientID)
	assert.NotEmpty(t, doc.CreatedAt)
	assert.JSONEq(t, string(payload), string(doc.Data))
}

func TestCreateExam_EmptyPayloadDefaultsToObject(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	p, err := svc.Create(ctx, PatientInput{Name: "Ana Ruiz"})
	require.NoError(t, err)

	rec, err := svc.CreateExam(ctx, p.ID, nil)
	require.NoError(t, err)

	content, err := os.ReadFile(rec.AbsPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), `"data": {}`)
}

func TestCreateExam_SameSecondGetsDistinctFiles(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	p, err := svc.Create(ctx, PatientInput{Name: "Ana Ruiz"})
	require.NoError(t, err)

	// Freeze the clock: two exams in the same second must not share a
	// report file.
	svc.Clock = func() time.Time {
		return time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)
	}

	first, err := svc.CreateExam(ctx, p.ID, json.RawMessage(`{"mood":"stable"}`))
	require.NoError(t, err)
	second, err := svc.CreateExam(ctx, p.ID, json.RawMessage(`{"mood":"anxious"}`))
	require.NoError(t, err)

	assert.NotEqual(t, first.StoredRelPath, second.StoredRelPath)

	one, err := os.ReadFile(first.AbsPath)
	require.NoError(t, err)
	two, err := os.ReadFile(second.AbsPath)
	require.NoError(t, err)
	assert.Contains(t, string(one), `"stable"`)
	assert.Contains(t, string(two), `"anxious"`)
}

func TestCreateExam_UnknownPatientFails(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.CreateExam(context.Background(), "missing", json.RawMessage(`{}`))
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestCreateExam_GoldenDocument(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	p, err := svc.Create(ctx, PatientInput{Name: "Ana Ruiz"})
	require.NoError(t, err)

	rec, err := svc.CreateExam(ctx, p.ID, json.RawMessage(`{"mood":"stable","sleep":"poor"}`))
	require.NoError(t, err)

	content, err := os.ReadFile(rec.AbsPath)
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "exam_document", content)
}
