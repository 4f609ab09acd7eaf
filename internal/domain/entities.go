// Package domain holds the clinical entities that take part in
// synchronization together with their schema descriptors.
package domain

import (
	"time"

	"golang.org/x/text/language"

	"github.com/MKhiriev/go-sync-keeper/internal/schema"
)

// Type names as they appear in serialized items.
const (
	TypePatient           = "Patient"
	TypePersonName        = "PersonName"
	TypePatientIdentifier = "PatientIdentifier"
	TypeEncounter         = "Encounter"
	TypeObs               = "Obs"
	TypeConcept           = "Concept"
	TypeConceptName       = "ConceptName"
	TypeRole              = "Role"
	TypePrivilege         = "Privilege"
	TypeForm              = "Form"
	TypeUser              = "User"

	TypeConceptSource   = "ConceptSource"
	TypeDrugIngredient  = "DrugIngredient"
	TypeFieldAnswer     = "FieldAnswer"
	TypeLoginCredential = "LoginCredential"
	TypeTribe           = "Tribe"
)

type User struct {
	schema.Base
	Username string
	SystemID string
	Retired  bool
}

func (*User) EntityType() string { return TypeUser }

type Patient struct {
	schema.Base
	Gender      string
	Birthdate   *time.Time
	Dead        bool
	Voided      bool
	Creator     *User
	Names       []*PersonName
	Identifiers []*PatientIdentifier
	// Age is derived from Birthdate and never stored.
	Age int
}

func (*Patient) EntityType() string { return TypePatient }

// AddName attaches n to p, replacing an existing name with the same uuid.
func (p *Patient) AddName(n *PersonName) {
	n.Person = p
	for i, existing := range p.Names {
		if existing.UUID == n.UUID {
			p.Names[i] = n
			return
		}
	}
	p.Names = append(p.Names, n)
}

// AddIdentifier attaches id to p, replacing one with the same uuid.
func (p *Patient) AddIdentifier(id *PatientIdentifier) {
	id.Patient = p
	for i, existing := range p.Identifiers {
		if existing.UUID == id.UUID {
			p.Identifiers[i] = id
			return
		}
	}
	p.Identifiers = append(p.Identifiers, id)
}

type PersonName struct {
	schema.Base
	Person     *Patient
	GivenName  string
	MiddleName string
	FamilyName string
	Preferred  bool
}

func (*PersonName) EntityType() string { return TypePersonName }

type PatientIdentifier struct {
	schema.Base
	Patient    *Patient
	Identifier string
	Preferred  bool
}

func (*PatientIdentifier) EntityType() string { return TypePatientIdentifier }

type Encounter struct {
	schema.Base
	Patient           *Patient
	Form              *Form
	EncounterDatetime *time.Time
	Voided            bool
}

func (*Encounter) EntityType() string { return TypeEncounter }

type Obs struct {
	schema.Base
	Person       *Patient
	Encounter    *Encounter
	Concept      *Concept
	ObsDatetime  *time.Time
	ValueNumeric *float64
	ValueText    string
	Comment      string
	Voided       bool
}

func (*Obs) EntityType() string { return TypeObs }

type Concept struct {
	schema.Base
	Datatype string
	Retired  bool
	Names    []*ConceptName
}

func (*Concept) EntityType() string { return TypeConcept }

// AddName attaches n to c, replacing a name with the same uuid.
func (c *Concept) AddName(n *ConceptName) {
	n.Concept = c
	for i, existing := range c.Names {
		if existing.UUID == n.UUID {
			c.Names[i] = n
			return
		}
	}
	c.Names = append(c.Names, n)
}

type ConceptName struct {
	schema.Base
	Concept *Concept
	Name    string
	Locale  language.Tag
}

func (*ConceptName) EntityType() string { return TypeConceptName }

type Privilege struct {
	schema.Base
	Privilege   string
	Description string
}

func (*Privilege) EntityType() string { return TypePrivilege }

type Role struct {
	schema.Base
	Role        string
	Description string
	Privileges  []*Privilege
}

func (*Role) EntityType() string { return TypeRole }

// HasPrivilege reports whether a privilege with uuid is attached.
func (r *Role) HasPrivilege(uuid string) bool {
	for _, p := range r.Privileges {
		if p.UUID == uuid {
			return true
		}
	}
	return false
}

type Form struct {
	schema.Base
	Name      string
	Version   string
	Published bool
	Retired   bool
	// Template is rebuilt after ingest and not carried between servers.
	Template string
}

func (*Form) EntityType() string { return TypeForm }

// Reference is a minimal entity used for types the dispatch table knows
// about but cannot persist.
type Reference struct {
	schema.Base
	Kind string
	Name string
	// Sync can switch replication off for a single instance.
	Sync bool
}

func (r *Reference) EntityType() string { return r.Kind }

// IsSynchronizable implements schema.Switchable.
func (r *Reference) IsSynchronizable() bool { return r.Sync }
