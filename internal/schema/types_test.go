package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleSchema = `{
	"version": "25.1",
	"objectTypes": {
		"zone": {
			"name": "Zone",
			"group": "Thermal Zones and Surfaces",
			"memo": "Defines a thermal zone of the building.",
			"fields": [
				{"id": "A1", "name": "Name", "type": "alpha", "required": true, "memo": ""},
				{"id": "N1", "name": "Direction of Relative North", "type": "real",
				 "required": false, "default": "0", "units": "deg",
				 "minimum": 0, "maximum": 360, "exclusiveMaximum": true,
				 "memo": "", "autosizable": false, "autocalculatable": false}
			],
			"minFields": 1,
			"isUnique": false,
			"isRequired": false,
			"extensible": 0
		},
		"building": {
			"name": "Building",
			"group": "Simulation Parameters",
			"memo": "Describes the building.",
			"fields": [],
			"minFields": 0,
			"isUnique": true,
			"isRequired": true,
			"extensible": 0
		}
	}
}`

func TestParse(t *testing.T) {
	s, err := Parse([]byte(sampleSchema))
	require.NoError(t, err)

	assert.Equal(t, "25.1", s.Version)
	require.Len(t, s.ObjectTypes, 2)

	zone := s.ObjectTypes["zone"]
	require.NotNil(t, zone)
	assert.Equal(t, "Zone", zone.Name)
	assert.Equal(t, 1, zone.MinFields)
	require.Len(t, zone.Fields, 2)

	north := zone.Fields[1]
	assert.Equal(t, FieldReal, north.Type)
	require.NotNil(t, north.Minimum)
	assert.Equal(t, 0.0, *north.Minimum)
	require.NotNil(t, north.Maximum)
	assert.Equal(t, 360.0, *north.Maximum)
	assert.False(t, north.ExclusiveMinimum)
	assert.True(t, north.ExclusiveMaximum)

	building := s.ObjectTypes["building"]
	require.NotNil(t, building)
	assert.True(t, building.IsUnique)
	assert.True(t, building.IsRequired)
}

func TestParseToleratesComments(t *testing.T) {
	content := `{
		// maintained by hand for tests
		"version": "1.0",
		"objectTypes": {}
	}`
	s, err := Parse([]byte(content))
	require.NoError(t, err)
	assert.Equal(t, "1.0", s.Version)
}

func TestParseRejectsInvalidDocuments(t *testing.T) {
	_, err := Parse([]byte("not json"))
	assert.Error(t, err)

	_, err = Parse([]byte(`{"version": "1.0"}`))
	assert.Error(t, err, "a document without objectTypes is not a schema")
}

func TestLookup(t *testing.T) {
	s, err := Parse([]byte(sampleSchema))
	require.NoError(t, err)

	t.Run("lowercases the candidate", func(t *testing.T) {
		assert.NotNil(t, s.Lookup("Zone"))
		assert.NotNil(t, s.Lookup("ZONE"))
		assert.NotNil(t, s.Lookup("zone"))
	})

	t.Run("trims identifier padding", func(t *testing.T) {
		assert.NotNil(t, s.Lookup("Zone "))
	})

	t.Run("miss yields nil, not an error", func(t *testing.T) {
		assert.Nil(t, s.Lookup("NoSuchClass"))
	})

	t.Run("nil schema yields nil", func(t *testing.T) {
		var nilSchema *Schema
		assert.Nil(t, nilSchema.Lookup("Zone"))
	})
}

func TestObjectTypeField(t *testing.T) {
	s, err := Parse([]byte(sampleSchema))
	require.NoError(t, err)
	zone := s.Lookup("zone")

	assert.Equal(t, "Name", zone.Field(0).Name)
	assert.Nil(t, zone.Field(2), "index past the field list has no field")
	assert.Nil(t, zone.Field(-1))
}

func TestFieldDisplayName(t *testing.T) {
	named := &Field{ID: "A1", Name: "Name"}
	assert.Equal(t, "Name", named.DisplayName())

	unnamed := &Field{ID: "N4"}
	assert.Equal(t, "N4", unnamed.DisplayName())
}

func TestClassNames(t *testing.T) {
	s, err := Parse([]byte(sampleSchema))
	require.NoError(t, err)

	names := s.ClassNames()
	assert.ElementsMatch(t, []string{"zone", "building"}, names)

	var nilSchema *Schema
	assert.Nil(t, nilSchema.ClassNames())
}
