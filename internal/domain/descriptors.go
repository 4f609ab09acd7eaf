package domain

import (
	"time"

	"golang.org/x/text/language"

	"github.com/MKhiriev/go-sync-keeper/internal/schema"
)

// Descriptors returns the schema of every participating type.
func Descriptors() []*schema.Descriptor {
	return []*schema.Descriptor{
		{
			Type: TypeUser,
			New:  func() schema.Entity { return &User{} },
			Fields: []schema.Field{
				schema.IDField(),
				schema.UUIDField(),
				schema.String("username", func(u *User) *string { return &u.Username }),
				schema.String("systemId", func(u *User) *string { return &u.SystemID }),
				schema.Bool("retired", func(u *User) *bool { return &u.Retired }),
			},
		},
		{
			Type: TypePatient,
			New:  func() schema.Entity { return &Patient{} },
			Fields: []schema.Field{
				schema.IDField(),
				schema.UUIDField(),
				schema.String("gender", func(p *Patient) *string { return &p.Gender }),
				schema.Timestamp("birthdate", func(p *Patient) **time.Time { return &p.Birthdate }),
				schema.Bool("dead", func(p *Patient) *bool { return &p.Dead }),
				schema.Bool("voided", func(p *Patient) *bool { return &p.Voided }),
				schema.Ref("creator", TypeUser, func(p *Patient) **User { return &p.Creator }),
				schema.Int("age", func(p *Patient) *int { return &p.Age }).AsTransient(),
			},
		},
		{
			Type: TypePersonName,
			New:  func() schema.Entity { return &PersonName{} },
			Fields: []schema.Field{
				schema.IDField(),
				schema.UUIDField(),
				schema.Ref("person", TypePatient, func(n *PersonName) **Patient { return &n.Person }),
				schema.String("givenName", func(n *PersonName) *string { return &n.GivenName }),
				schema.String("middleName", func(n *PersonName) *string { return &n.MiddleName }),
				schema.String("familyName", func(n *PersonName) *string { return &n.FamilyName }),
				schema.Bool("preferred", func(n *PersonName) *bool { return &n.Preferred }),
			},
		},
		{
			Type: TypePatientIdentifier,
			New:  func() schema.Entity { return &PatientIdentifier{} },
			Fields: []schema.Field{
				schema.IDField(),
				schema.UUIDField(),
				schema.Ref("patient", TypePatient, func(i *PatientIdentifier) **Patient { return &i.Patient }),
				schema.String("identifier", func(i *PatientIdentifier) *string { return &i.Identifier }),
				schema.Bool("preferred", func(i *PatientIdentifier) *bool { return &i.Preferred }),
			},
		},
		{
			Type: TypeEncounter,
			New:  func() schema.Entity { return &Encounter{} },
			Fields: []schema.Field{
				schema.IDField(),
				schema.UUIDField(),
				schema.Ref("patient", TypePatient, func(e *Encounter) **Patient { return &e.Patient }),
				schema.Ref("form", TypeForm, func(e *Encounter) **Form { return &e.Form }),
				schema.Timestamp("encounterDatetime", func(e *Encounter) **time.Time { return &e.EncounterDatetime }),
				schema.Bool("voided", func(e *Encounter) *bool { return &e.Voided }),
			},
		},
		{
			Type: TypeObs,
			New:  func() schema.Entity { return &Obs{} },
			Fields: []schema.Field{
				schema.IDField(),
				schema.UUIDField(),
				schema.Ref("person", TypePatient, func(o *Obs) **Patient { return &o.Person }),
				schema.Ref("encounter", TypeEncounter, func(o *Obs) **Encounter { return &o.Encounter }),
				schema.Ref("concept", TypeConcept, func(o *Obs) **Concept { return &o.Concept }),
				schema.Timestamp("obsDatetime", func(o *Obs) **time.Time { return &o.ObsDatetime }),
				schema.Double("valueNumeric", func(o *Obs) **float64 { return &o.ValueNumeric }),
				schema.Text("valueText", func(o *Obs) *string { return &o.ValueText }),
				schema.Text("comment", func(o *Obs) *string { return &o.Comment }),
				schema.Bool("voided", func(o *Obs) *bool { return &o.Voided }),
			},
		},
		{
			Type: TypeConcept,
			New:  func() schema.Entity { return &Concept{} },
			Fields: []schema.Field{
				schema.IDField(),
				schema.UUIDField(),
				schema.String("datatype", func(c *Concept) *string { return &c.Datatype }),
				schema.Bool("retired", func(c *Concept) *bool { return &c.Retired }),
			},
		},
		{
			Type: TypeConceptName,
			New:  func() schema.Entity { return &ConceptName{} },
			Fields: []schema.Field{
				schema.IDField(),
				schema.UUIDField(),
				schema.Ref("concept", TypeConcept, func(n *ConceptName) **Concept { return &n.Concept }),
				schema.String("name", func(n *ConceptName) *string { return &n.Name }),
				schema.Locale("locale", func(n *ConceptName) *language.Tag { return &n.Locale }),
			},
		},
		{
			Type: TypePrivilege,
			New:  func() schema.Entity { return &Privilege{} },
			Fields: []schema.Field{
				schema.IDField(),
				schema.UUIDField(),
				schema.String("privilege", func(p *Privilege) *string { return &p.Privilege }),
				schema.String("description", func(p *Privilege) *string { return &p.Description }),
			},
		},
		{
			Type: TypeRole,
			New:  func() schema.Entity { return &Role{} },
			Fields: []schema.Field{
				schema.IDField(),
				schema.UUIDField(),
				schema.String("role", func(r *Role) *string { return &r.Role }),
				schema.String("description", func(r *Role) *string { return &r.Description }),
				schema.Collection("privileges", TypePrivilege, func(r *Role) *[]*Privilege { return &r.Privileges }),
			},
		},
		{
			Type: TypeForm,
			New:  func() schema.Entity { return &Form{} },
			Fields: []schema.Field{
				schema.IDField(),
				schema.UUIDField(),
				schema.String("name", func(f *Form) *string { return &f.Name }),
				schema.String("version", func(f *Form) *string { return &f.Version }),
				schema.Bool("published", func(f *Form) *bool { return &f.Published }),
				schema.Bool("retired", func(f *Form) *bool { return &f.Retired }),
				schema.Text("template", func(f *Form) *string { return &f.Template }).AsTransient(),
			},
		},
		reference(TypeConceptSource),
		reference(TypeDrugIngredient),
		reference(TypeFieldAnswer),
		reference(TypeLoginCredential),
		reference(TypeTribe),
	}
}

func reference(kind string) *schema.Descriptor {
	return &schema.Descriptor{
		Type: kind,
		New:  func() schema.Entity { return &Reference{Kind: kind, Sync: true} },
		Fields: []schema.Field{
			schema.IDField(),
			schema.UUIDField(),
			schema.String("name", func(r *Reference) *string { return &r.Name }),
		},
	}
}

// NewRegistry returns a registry holding every participating type.
func NewRegistry() *schema.Registry {
	return schema.NewRegistry(Descriptors()...)
}
