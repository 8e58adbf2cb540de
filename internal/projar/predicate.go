package projar

// Field names a column a predicate can test. Record fields are tested on
// the record row; the remaining fields only make sense inside a Linked
// predicate of the matching relation.
type Field string

const (
	FieldID         Field = "id"
	FieldCallNumber Field = "call_number"
	FieldTitle      Field = "title"
	FieldContent    Field = "content"
	FieldDate       Field = "date"
	FieldLocationID Field = "location_id"
	FieldSectorID   Field = "sector_id"

	FieldAuthorID    Field = "author_id"
	FieldAuthorRole  Field = "author_role"
	FieldSubjectID   Field = "subject_id"
	FieldSubjectName Field = "subject_name"
	FieldExecutorID  Field = "executor_id"
	FieldAreaID      Field = "area_id"
)

// Relation names a many-to-many link between records and an entity.
type Relation string

const (
	RelAuthors   Relation = "authors"
	RelSubjects  Relation = "subjects"
	RelExecutors Relation = "executors"
	RelAreas     Relation = "areas"
)

// DatePart selects a component of a date column.
type DatePart string

const (
	Month DatePart = "month"
	Year  DatePart = "year"
)

// Predicate is a node of the filter tree handed to a Repository. Stores
// translate it into their own query language.
type Predicate interface {
	predicate()
}

// And holds when every child holds. An empty And places no restriction.
type And []Predicate

// Equals compares a field with a value.
type Equals struct {
	Field Field
	Value any
}

// Contains is a substring test. Fold makes it case-insensitive.
type Contains struct {
	Field Field
	Text  string
	Fold  bool
}

// Matches is a case-insensitive regular expression test. Stores that
// cannot evaluate Pattern test Word as a case-insensitive substring
// instead.
type Matches struct {
	Field   Field
	Pattern string
	Word    string
}

// DateEquals compares one component of a date field with a value.
type DateEquals struct {
	Field Field
	Part  DatePart
	Value int
}

// Linked holds when at least one entity linked through Relation satisfies
// Where.
type Linked struct {
	Relation Relation
	Where    Predicate
}

func (And) predicate()        {}
func (Equals) predicate()     {}
func (Contains) predicate()   {}
func (Matches) predicate()    {}
func (DateEquals) predicate() {}
func (Linked) predicate()     {}

// Order is the sort rule of a query.
type Order string

// OrderIDDesc is the only ordering the catalog uses.
const OrderIDDesc Order = "id_desc"

// Query is what a Repository executes.
type Query struct {
	Where Predicate
	Order Order
}
