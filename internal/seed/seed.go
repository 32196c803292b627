package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/xeipuuv/gojsonschema"

	"github.com/dentaldesk-io/dentaldesk-ce/internal/models"
	"github.com/dentaldesk-io/dentaldesk-ce/internal/repository"
)

// fixtureSchema rejects malformed fixture files before any row is written.
const fixtureSchema = `{
	"type": "object",
	"required": ["company_id", "clinic_ids"],
	"properties": {
		"company_id": {"type": "string", "minLength": 1},
		"clinic_ids": {"type": "array", "items": {"type": "string"}, "minItems": 1},
		"employees": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["first_name", "last_name", "email", "role"],
				"properties": {
					"first_name": {"type": "string"},
					"last_name": {"type": "string"},
					"email": {"type": "string", "minLength": 3},
					"phone": {"type": "string"},
					"password": {"type": "string"},
					"role": {"type": "string"},
					"position": {"type": "string"},
					"clinic_id": {"type": "string"}
				}
			}
		},
		"insurances": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["name"],
				"properties": {
					"name": {"type": "string", "minLength": 1},
					"phone": {"type": "string"},
					"portal_url": {"type": "string"},
					"notes": {"type": "string"}
				}
			}
		},
		"directory": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["name"],
				"properties": {
					"name": {"type": "string", "minLength": 1},
					"entries": {
						"type": "array",
						"items": {
							"type": "object",
							"required": ["group"],
							"properties": {
								"group": {"enum": ["corporate", "frontdesk", "offices"]},
								"location": {"type": "string"},
								"phone": {"type": "string"},
								"extension": {"type": "string"},
								"department": {"type": "string"},
								"employee": {"type": "string"}
							}
						}
					}
				}
			}
		},
		"documents": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["name"],
				"properties": {
					"name": {"type": "string", "minLength": 1},
					"groups": {
						"type": "array",
						"items": {
							"type": "object",
							"required": ["name"],
							"properties": {
								"name": {"type": "string", "minLength": 1},
								"documents": {
									"type": "array",
									"items": {
										"type": "object",
										"required": ["title"],
										"properties": {
											"title": {"type": "string", "minLength": 1},
											"version": {"type": "string"},
											"description": {"type": "string"},
											"url": {"type": "string"}
										}
									}
								}
							}
						}
					}
				}
			}
		}
	}
}`

// defaultPassword is assigned to fixture accounts that omit one. Intended
// for demo installs only.
const defaultPassword = "changeme"

type fixtureEmployee struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Password  string `json:"password"`
	Role      string `json:"role"`
	Position  string `json:"position"`
	ClinicID  string `json:"clinic_id"`
}

type fixtureInsurance struct {
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	PortalURL string `json:"portal_url"`
	Notes     string `json:"notes"`
}

type fixtureDirectoryEntry struct {
	Group      string `json:"group"`
	Location   string `json:"location"`
	Phone      string `json:"phone"`
	Extension  string `json:"extension"`
	Department string `json:"department"`
	Employee   string `json:"employee"`
}

type fixtureDirectoryEntity struct {
	Name    string                  `json:"name"`
	Entries []fixtureDirectoryEntry `json:"entries"`
}

type fixtureDocument struct {
	Title       string `json:"title"`
	Version     string `json:"version"`
	Description string `json:"description"`
	URL         string `json:"url"`
}

type fixtureDocumentGroup struct {
	Name      string            `json:"name"`
	Documents []fixtureDocument `json:"documents"`
}

type fixtureDocumentEntity struct {
	Name   string                 `json:"name"`
	Groups []fixtureDocumentGroup `json:"groups"`
}

// Fixture is the demo data file loaded at install time.
type Fixture struct {
	CompanyID  string                   `json:"company_id"`
	ClinicIDs  []string                 `json:"clinic_ids"`
	Employees  []fixtureEmployee        `json:"employees"`
	Insurances []fixtureInsurance       `json:"insurances"`
	Directory  []fixtureDirectoryEntity `json:"directory"`
	Documents  []fixtureDocumentEntity  `json:"documents"`
}

// Load reads and validates a fixture file. Schema violations are reported
// together rather than failing on the first.
func Load(path string) (*Fixture, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture: %w", err)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(fixtureSchema),
		gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return nil, fmt.Errorf("validate fixture: %w", err)
	}
	if !result.Valid() {
		var problems []string
		for _, desc := range result.Errors() {
			problems = append(problems, desc.String())
		}
		return nil, fmt.Errorf("fixture %s is invalid: %s", path, strings.Join(problems, "; "))
	}

	var fixture Fixture
	if err := json.Unmarshal(raw, &fixture); err != nil {
		return nil, fmt.Errorf("parse fixture: %w", err)
	}
	return &fixture, nil
}

// Seeder installs fixture data. The database handle is used for the
// container tables the repositories treat as pre-existing.
type Seeder struct {
	db    *sqlx.DB
	repos *repository.Repositories
}

func NewSeeder(db *sqlx.DB, repos *repository.Repositories) *Seeder {
	return &Seeder{db: db, repos: repos}
}

// Run applies the fixture. Schedule grids are created first so assignment
// slots exist before anyone edits them.
func (s *Seeder) Run(ctx context.Context, fixture *Fixture) error {
	if err := s.repos.FrontDesk.Seed(ctx, fixture.ClinicIDs); err != nil {
		return fmt.Errorf("seed front desk grid: %w", err)
	}
	if err := s.repos.Doctors.Seed(ctx, fixture.ClinicIDs); err != nil {
		return fmt.Errorf("seed doctor grid: %w", err)
	}
	if err := s.seedEmployees(ctx, fixture); err != nil {
		return err
	}
	if err := s.seedInsurances(ctx, fixture); err != nil {
		return err
	}
	if err := s.seedDirectory(ctx, fixture); err != nil {
		return err
	}
	return s.seedDocuments(ctx, fixture)
}

func (s *Seeder) seedEmployees(ctx context.Context, fixture *Fixture) error {
	for _, fe := range fixture.Employees {
		email := strings.ToLower(strings.TrimSpace(fe.Email))
		if existing, err := s.repos.Employees.GetByEmail(ctx, email); err == nil && existing != nil {
			continue
		}

		now := time.Now().UTC()
		emp := &models.Employee{
			ID:        uuid.New().String(),
			CompanyID: fixture.CompanyID,
			FirstName: fe.FirstName,
			LastName:  fe.LastName,
			Email:     email,
			Phone:     fe.Phone,
			Role:      models.NormalizeRole(fe.Role),
			Position:  fe.Position,
			ClinicID:  fe.ClinicID,
			IsActive:  true,
			CreatedAt: now,
			UpdatedAt: now,
		}
		password := fe.Password
		if password == "" {
			password = defaultPassword
		}
		if err := emp.SetPassword(password); err != nil {
			return fmt.Errorf("hash password for %s: %w", email, err)
		}
		if err := s.repos.Employees.Create(ctx, emp); err != nil {
			return fmt.Errorf("seed employee %s: %w", email, err)
		}
	}
	return nil
}

func (s *Seeder) seedInsurances(ctx context.Context, fixture *Fixture) error {
	existing, err := s.repos.Insurances.List(ctx, fixture.CompanyID)
	if err != nil {
		return fmt.Errorf("list insurances: %w", err)
	}
	known := make(map[string]bool, len(existing))
	for _, ins := range existing {
		known[ins.Name] = true
	}

	for _, fi := range fixture.Insurances {
		if known[fi.Name] {
			continue
		}
		now := time.Now().UTC()
		ins := &models.Insurance{
			ID:        uuid.New().String(),
			CompanyID: fixture.CompanyID,
			Name:      fi.Name,
			Phone:     fi.Phone,
			PortalURL: fi.PortalURL,
			Notes:     fi.Notes,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := s.repos.Insurances.Create(ctx, ins); err != nil {
			return fmt.Errorf("seed insurance %s: %w", fi.Name, err)
		}
	}
	return nil
}

func (s *Seeder) seedDirectory(ctx context.Context, fixture *Fixture) error {
	for order, fe := range fixture.Directory {
		entityID, created, err := s.ensureDirectoryEntity(ctx, fixture.CompanyID, fe.Name, order)
		if err != nil {
			return err
		}
		if !created {
			continue
		}

		counts := map[string]int{}
		for _, entry := range fe.Entries {
			rec := &models.DirectoryEntry{
				ID:         uuid.New().String(),
				EntityID:   entityID,
				Group:      entry.Group,
				Location:   entry.Location,
				Phone:      entry.Phone,
				Extension:  entry.Extension,
				Department: entry.Department,
				Employee:   entry.Employee,
				Order:      counts[entry.Group],
			}
			counts[entry.Group]++
			if err := s.repos.Directory.CreateEntry(ctx, rec); err != nil {
				return fmt.Errorf("seed directory entry for %s: %w", fe.Name, err)
			}
		}
	}
	return nil
}

func (s *Seeder) ensureDirectoryEntity(ctx context.Context, companyID, name string, order int) (string, bool, error) {
	var id string
	err := s.db.GetContext(ctx, &id,
		`SELECT id FROM directory_entities WHERE company_id = ? AND name = ?`, companyID, name)
	if err == nil {
		return id, false, nil
	}

	id = uuid.New().String()
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO directory_entities (id, company_id, name, seed_order) VALUES (?, ?, ?, ?)`,
		id, companyID, name, order)
	if err != nil {
		return "", false, fmt.Errorf("seed directory entity %s: %w", name, err)
	}
	return id, true, nil
}

func (s *Seeder) seedDocuments(ctx context.Context, fixture *Fixture) error {
	for _, fe := range fixture.Documents {
		var entityID string
		err := s.db.GetContext(ctx, &entityID,
			`SELECT id FROM document_entities WHERE company_id = ? AND name = ?`,
			fixture.CompanyID, fe.Name)
		if err == nil {
			continue
		}

		entityID = uuid.New().String()
		if _, err := s.db.ExecContext(ctx,
			`INSERT INTO document_entities (id, company_id, name) VALUES (?, ?, ?)`,
			entityID, fixture.CompanyID, fe.Name); err != nil {
			return fmt.Errorf("seed document entity %s: %w", fe.Name, err)
		}

		for _, fg := range fe.Groups {
			groupID := uuid.New().String()
			if _, err := s.db.ExecContext(ctx,
				`INSERT INTO document_groups (id, entity_id, name) VALUES (?, ?, ?)`,
				groupID, entityID, fg.Name); err != nil {
				return fmt.Errorf("seed document group %s: %w", fg.Name, err)
			}
			for _, fd := range fg.Documents {
				doc := &models.DocumentRecord{
					ID:          uuid.New().String(),
					GroupID:     groupID,
					Title:       fd.Title,
					Version:     fd.Version,
					Description: fd.Description,
					URL:         fd.URL,
				}
				if err := s.repos.Documents.AddDocument(ctx, groupID, doc); err != nil {
					return fmt.Errorf("seed document %s: %w", fd.Title, err)
				}
			}
		}
	}
	return nil
}
