package projar

import (
	"errors"
	"time"
)

// ErrNotFound is returned when a catalog record is not found.
var ErrNotFound = errors.New("record not found")

// AuthorRole classifies how an author contributed to a record.
type AuthorRole string

const (
	RoleAll                AuthorRole = "all"
	RolePrimary            AuthorRole = "primary"
	RoleSecondaryCorporate AuthorRole = "secondary-corporate"
	RoleSecondaryEvent     AuthorRole = "secondary-event"
)

type Sector struct {
	ID   int    `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

type Location struct {
	ID   int    `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

type Subject struct {
	ID   int    `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// Executor is the organization responsible for producing a catalogued item.
type Executor struct {
	ID   int    `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
	Type string `json:"type,omitempty" yaml:"type"`
}

type GeographicArea struct {
	ID   int    `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

type Author struct {
	ID   int        `json:"id" yaml:"id"`
	Name string     `json:"name" yaml:"name"`
	Role AuthorRole `json:"role" yaml:"role"`
}

// Record is a single archival catalog entry ("projar").
type Record struct {
	ID            int        `json:"id" yaml:"id"`
	CallNumber    string     `json:"call_number,omitempty" yaml:"call_number"`
	Title         string     `json:"title,omitempty" yaml:"title"`
	Date          *time.Time `json:"date,omitempty" yaml:"date"`
	Collation     string     `json:"collation,omitempty" yaml:"collation"`
	Content       string     `json:"content,omitempty" yaml:"content"`
	GeneralNotes  string     `json:"general_notes,omitempty" yaml:"general_notes"`
	Source        string     `json:"source,omitempty" yaml:"source"`
	Scale         string     `json:"scale,omitempty" yaml:"scale"`
	OtherVersions string     `json:"other_versions,omitempty" yaml:"other_versions"`
	SectorID      *int       `json:"sector_id,omitempty" yaml:"sector_id"`
	LocationID    *int       `json:"location_id,omitempty" yaml:"location_id"`

	Sector    *Sector          `json:"sector,omitempty" yaml:"-"`
	Location  *Location        `json:"location,omitempty" yaml:"-"`
	Subjects  []Subject        `json:"subjects,omitempty" yaml:"-"`
	Executors []Executor       `json:"executors,omitempty" yaml:"-"`
	Areas     []GeographicArea `json:"geographic_areas,omitempty" yaml:"-"`
	Authors   []Author         `json:"authors,omitempty" yaml:"-"`
}

// Options holds the lists used to populate filter controls.
type Options struct {
	Locations []Location `json:"locations"`
	Sectors   []Sector   `json:"sectors"`
	Subjects  []Subject  `json:"subjects"`
	Executors []Executor `json:"executors"`
	Authors   []Author   `json:"authors"`
	Contents  []string   `json:"contents"`
}

// Dataset is the input of the external loader: entities plus the link
// rows of each record. The catalog itself never writes.
type Dataset struct {
	Sectors   []Sector         `yaml:"sectors"`
	Locations []Location       `yaml:"locations"`
	Subjects  []Subject        `yaml:"subjects"`
	Executors []Executor       `yaml:"executors"`
	Areas     []GeographicArea `yaml:"geographic_areas"`
	Authors   []Author         `yaml:"authors"`
	Records   []DatasetRecord  `yaml:"records"`
}

type DatasetRecord struct {
	Record    `yaml:",inline"`
	Subjects  []int `yaml:"subjects"`
	Executors []int `yaml:"executors"`
	Areas     []int `yaml:"geographic_areas"`
	Authors   []int `yaml:"authors"`
}
