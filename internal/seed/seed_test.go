package seed

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFixture(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fixture.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadValidFixture(t *testing.T) {
	path := writeFixture(t, `{
		"company_id": "c1",
		"clinic_ids": ["clinic-1", "clinic-2"],
		"employees": [
			{"first_name": "Dana", "last_name": "Reyes", "email": "dana@example.com", "role": "Admin"}
		],
		"insurances": [{"name": "Delta Dental", "phone": "800-555-0100"}],
		"directory": [
			{"name": "Main Office", "entries": [{"group": "frontdesk", "phone": "555-0101"}]}
		],
		"documents": [
			{"name": "Main Office", "groups": [{"name": "Policies", "documents": [{"title": "Handbook"}]}]}
		]
	}`)

	fixture, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "c1", fixture.CompanyID)
	assert.Len(t, fixture.ClinicIDs, 2)
	assert.Equal(t, "dana@example.com", fixture.Employees[0].Email)
	assert.Equal(t, "frontdesk", fixture.Directory[0].Entries[0].Group)
	assert.Equal(t, "Handbook", fixture.Documents[0].Groups[0].Documents[0].Title)
}

func TestLoadRejectsMissingCompany(t *testing.T) {
	path := writeFixture(t, `{"clinic_ids": ["clinic-1"]}`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid")
}

func TestLoadRejectsUnknownDirectoryGroup(t *testing.T) {
	path := writeFixture(t, `{
		"company_id": "c1",
		"clinic_ids": ["clinic-1"],
		"directory": [{"name": "Main", "entries": [{"group": "warehouse"}]}]
	}`)

	_, err := Load(path)
	require.Error(t, err)
}

func TestLoadRejectsEmptyClinicList(t *testing.T) {
	path := writeFixture(t, `{"company_id": "c1", "clinic_ids": []}`)

	_, err := Load(path)
	require.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}
