package schema

// AttrAssignmentTable represents the 'attribute.assignment' table,
// linking one owner instance (product/variant/page) to one attribute.
// A row never persists without at least one assigned value.
type AttrAssignmentTable struct {
	Table       string
	ID          string
	OwnerType   string
	OwnerID     string
	AttributeID string
}

// AttrAssignment is the schema definition for attribute.assignment
var AttrAssignment = AttrAssignmentTable{
	Table:       "attribute.assignment",
	ID:          "id",
	OwnerType:   "ownertype",
	OwnerID:     "ownerid",
	AttributeID: "attributeid",
}

// AttrAssignedValueTable represents the 'attribute.assignedvalue' table,
// the ordered membership of values within an assignment.
type AttrAssignedValueTable struct {
	Table        string
	ID           string
	AssignmentID string
	ValueID      string
	SortOrder    string
}

// AttrAssignedValue is the schema definition for attribute.assignedvalue
var AttrAssignedValue = AttrAssignedValueTable{
	Table:        "attribute.assignedvalue",
	ID:           "id",
	AssignmentID: "assignmentid",
	ValueID:      "valueid",
	SortOrder:    "sortorder",
}
