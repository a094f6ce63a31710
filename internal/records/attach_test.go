package records

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caesar-dat-com/NAJU/internal/store"
)

func TestImport_CopiesAndIndexes(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	p, err := svc.Create(ctx, PatientInput{Name: "Ana Ruiz"})
	require.NoError(t, err)

	a := writeSourceFile(t, "lab results.pdf", "lab-bytes")
	b := writeSourceFile(t, "referral.pdf", "referral-bytes")

	imported, err := svc.Import(ctx, p.ID, []string{a, b})
	require.NoError(t, err)
	require.Len(t, imported, 2)

	for _, rec := range imported {
		assert.Equal(t, store.KindAttachment, rec.Kind)
		assert.True(t, strings.HasPrefix(rec.StoredRelPath, "patients/"+p.ID+"/files/"),
			"stored_relpath = %q", rec.StoredRelPath)
		_, err := os.Stat(rec.AbsPath)
		assert.NoError(t, err, "copied file must exist at %s", rec.AbsPath)
	}

	// Display name sanitized, physical name stamped for uniqueness.
	assert.Equal(t, "lab results.pdf", imported[0].Filename)
	assert.NotEqual(t, imported[0].Filename, filepath.Base(imported[0].AbsPath))
}

func TestImport_SameBasenameSourcesKeptApart(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	p, err := svc.Create(ctx, PatientInput{Name: "Ana Ruiz"})
	require.NoError(t, err)

	// Two different sources sharing one basename in a single batch: the
	// second must be renamed, not overwrite the first.
	a := writeSourceFile(t, "report.pdf", "contents-A")
	b := writeSourceFile(t, "report.pdf", "contents-B")

	imported, err := svc.Import(ctx, p.ID, []string{a, b})
	require.NoError(t, err)
	require.Len(t, imported, 2)

	assert.NotEqual(t, imported[0].StoredRelPath, imported[1].StoredRelPath)

	first, err := os.ReadFile(imported[0].AbsPath)
	require.NoError(t, err)
	second, err := os.ReadFile(imported[1].AbsPath)
	require.NoError(t, err)
	assert.Equal(t, "contents-A", string(first))
	assert.Equal(t, "contents-B", string(second))
}

func TestImport_SkipsMissingSources(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	p, err := svc.Create(ctx, PatientInput{Name: "Ana Ruiz"})
	require.NoError(t, err)

	a := writeSourceFile(t, "first.pdf", "1")
	b := writeSourceFile(t, "second.pdf", "2")
	missing := filepath.Join(t.TempDir(), "does-not-exist.pdf")

	imported, err := svc.Import(ctx, p.ID, []string{a, missing, b})
	require.NoError(t, err, "missing sources are skipped, not an error")
	require.Len(t, imported, 2)

	// Relative order of the surviving sources is preserved.
	assert.Equal(t, "first.pdf", imported[0].Filename)
	assert.Equal(t, "second.pdf", imported[1].Filename)
}

func TestImport_AllMissingReturnsEmpty(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	p, err := svc.Create(ctx, PatientInput{Name: "Ana Ruiz"})
	require.NoError(t, err)

	imported, err := svc.Import(ctx, p.ID, []string{
		filepath.Join(t.TempDir(), "a.pdf"),
		filepath.Join(t.TempDir(), "b.pdf"),
	})
	require.NoError(t, err)
	assert.Empty(t, imported)
	assert.NotNil(t, imported)
}

func TestImport_UnknownPatientFails(t *testing.T) {
	svc := newTestService(t)

	src := writeSourceFile(t, "scan.pdf", "bytes")
	_, err := svc.Import(context.Background(), "missing", []string{src})
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestImport_SanitizesUnsafeNames(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	p, err := svc.Create(ctx, PatientInput{Name: "Ana Ruiz"})
	require.NoError(t, err)

	src := writeSourceFile(t, "weird?name*here.pdf", "bytes")
	imported, err := svc.Import(ctx, p.ID, []string{src})
	require.NoError(t, err)
	require.Len(t, imported, 1)

	assert.Equal(t, "weird_name_here.pdf", imported[0].Filename)
	_, err = os.Stat(imported[0].AbsPath)
	assert.NoError(t, err)
}

func TestImport_RepairsWipedPatientFolder(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	p, err := svc.Create(ctx, PatientInput{Name: "Ana Ruiz"})
	require.NoError(t, err)

	// Wipe the provisioned tree; import must recreate it.
	require.NoError(t, os.RemoveAll(filepath.Join(svc.Base, "patients", p.ID)))

	src := writeSourceFile(t, "scan.pdf", "bytes")
	imported, err := svc.Import(ctx, p.ID, []string{src})
	require.NoError(t, err)
	require.Len(t, imported, 1)
	_, err = os.Stat(imported[0].AbsPath)
	assert.NoError(t, err)
}

func TestFiles_MostRecentFirstWithAbsolutePaths(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	p, err := svc.Create(ctx, PatientInput{Name: "Ana Ruiz"})
	require.NoError(t, err)

	first := writeSourceFile(t, "old.pdf", "1")
	second := writeSourceFile(t, "new.pdf", "2")

	_, err = svc.Import(ctx, p.ID, []string{first})
	require.NoError(t, err)
	_, err = svc.Import(ctx, p.ID, []string{second})
	require.NoError(t, err)

	files, err := svc.Files(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, files, 2)

	assert.Equal(t, "new.pdf", files[0].Filename)
	assert.Equal(t, "old.pdf", files[1].Filename)
	for _, f := range files {
		assert.True(t, filepath.IsAbs(f.AbsPath), "AbsPath = %q", f.AbsPath)
	}
}
