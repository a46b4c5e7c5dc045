package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mkdir(t *testing.T, parts ...string) string {
	t.Helper()
	dir := filepath.Join(parts...)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestCategories(t *testing.T) {
	root := t.TempDir()
	mkdir(t, root, "business_sales")
	mkdir(t, root, "telecom_analysis")

	configured := []Category{
		{Label: "Telecom", Folder: "telecom_analysis"},
		{Label: "Healthcare", Folder: "healthcare"}, // does not exist
		{Label: "Business Sales", Folder: "business_sales"},
	}
	s := NewScanner(root, configured, nil)

	got := s.Categories()
	require.Len(t, got, 2)
	// Configuration order preserved, missing folder filtered out.
	assert.Equal(t, "telecom_analysis", got[0].Folder)
	assert.Equal(t, "business_sales", got[1].Folder)
}

func TestCategoriesMissingRoot(t *testing.T) {
	s := NewScanner(filepath.Join(t.TempDir(), "nope"), []Category{{Label: "A", Folder: "a"}}, nil)
	assert.Empty(t, s.Categories())
}

func TestProjects(t *testing.T) {
	root := t.TempDir()
	mkdir(t, root, "business_sales", "Zeta_report")
	mkdir(t, root, "business_sales", "alpha_study")
	mkdir(t, root, "business_sales", "Beta_quarter")
	// A stray file must not show up as a project.
	writeFile(t, filepath.Join(root, "business_sales", "notes.txt"), "x")

	s := NewScanner(root, nil, nil)
	got := s.Projects("business_sales")

	require.Len(t, got, 3)
	// Case-insensitive sort by name.
	assert.Equal(t, "alpha_study", got[0].Name)
	assert.Equal(t, "Beta_quarter", got[1].Name)
	assert.Equal(t, "Zeta_report", got[2].Name)
	assert.Equal(t, "business_sales", got[0].Category)
}

func TestProjectsEmptyAndMissing(t *testing.T) {
	root := t.TempDir()
	s := NewScanner(root, nil, nil)

	assert.Empty(t, s.Projects(""), "empty root")
	assert.Empty(t, s.Projects("missing_category"), "missing category dir")
}

func TestProjectsFlatRoot(t *testing.T) {
	root := t.TempDir()
	mkdir(t, root, "q1_sales")
	mkdir(t, root, "churn_model")

	s := NewScanner(root, nil, nil)
	got := s.Projects("")

	require.Len(t, got, 2)
	assert.Equal(t, "churn_model", got[0].Name)
	assert.Equal(t, "", got[0].Category)
}

func TestAll(t *testing.T) {
	root := t.TempDir()
	mkdir(t, root, "a_cat", "proj1")
	mkdir(t, root, "b_cat", "proj2")
	mkdir(t, root, "b_cat", "proj3")

	cats := []Category{
		{Label: "B", Folder: "b_cat"},
		{Label: "A", Folder: "a_cat"},
	}
	s := NewScanner(root, cats, nil)

	got := s.All()
	require.Len(t, got, 3)
	// Category configuration order, projects sorted within.
	assert.Equal(t, "proj2", got[0].Name)
	assert.Equal(t, "proj3", got[1].Name)
	assert.Equal(t, "proj1", got[2].Name)
}

func TestFind(t *testing.T) {
	root := t.TempDir()
	mkdir(t, root, "business_sales", "q1_sales")
	s := NewScanner(root, nil, nil)

	e, err := s.Find("business_sales", "q1_sales")
	require.NoError(t, err)
	assert.Equal(t, "q1_sales", e.Name)

	_, err = s.Find("business_sales", "deleted_between_renders")
	assert.ErrorIs(t, err, ErrProjectNotFound)

	_, err = s.Find("missing_category", "q1_sales")
	assert.ErrorIs(t, err, ErrProjectNotFound)
}

func TestLabel(t *testing.T) {
	s := NewScanner(t.TempDir(), []Category{{Label: "Business Sales", Folder: "business_sales"}}, nil)
	assert.Equal(t, "Business Sales", s.Label("business_sales"))
	assert.Equal(t, "other", s.Label("other"))
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "Q1 Sales", Title("q1_sales"))
	assert.Equal(t, "Churn Model V2", Title("churn_model_v2"))
	assert.Equal(t, "Plain", Title("plain"))
}
