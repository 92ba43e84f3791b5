package scenario

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"lake-sim/internal/common"
	"lake-sim/internal/simulation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const harbour = `{
  "lake": {"width": 400, "height": 300},
  "boats": [
    {"name": "Ferry", "radius": 12, "speed": 5, "max_speed": 40, "acceleration": 2,
     "position": {"x": -100, "y": 0}, "direction": {"x": 3, "y": 0}},
    {"name": "Dinghy", "radius": 5, "speed": 0, "max_speed": 20, "acceleration": 4,
     "position": {"x": 0, "y": 0}, "target": {"x": 0, "y": -50}}
  ]
}`

func TestLoadAndBuild(t *testing.T) {
	f, err := Load(strings.NewReader(harbour))
	require.NoError(t, err)
	require.Len(t, f.Boats, 2)
	assert.Equal(t, 40.0, f.Boats[0].MaxSpeed)

	lake, err := f.Build()
	require.NoError(t, err)
	assert.Equal(t, 400.0, lake.GetWidth())
	assert.Equal(t, 300.0, lake.GetHeight())

	boats := lake.GetBoats()
	require.Len(t, boats, 2)
	assert.Equal(t, "Ferry", boats[0].GetName())
	assert.Equal(t, 5.0, boats[0].GetSpeed())

	dir, err := boats[0].GetDirection()
	require.NoError(t, err)
	assert.Equal(t, common.NewVector(1, 0), dir)

	dir, err = boats[1].GetDirection()
	require.NoError(t, err)
	assert.Equal(t, common.NewVector(0, -1), dir, "targets become headings")
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "harbour.json")
	require.NoError(t, os.WriteFile(path, []byte(harbour), 0o644))

	f, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, f.Boats, 2)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	_, err := Load(strings.NewReader(`{"lake": {"width": 10, "height": 10, "depth": 3}}`))
	assert.Error(t, err)
}

func TestBuildErrors(t *testing.T) {
	pos := common.NewPoint(0, 0)
	dir := common.NewVector(1, 0)
	target := common.NewPoint(5, 5)

	tests := []struct {
		name string
		file File
		want error
	}{
		{
			name: "invalid lake",
			file: File{Lake: LakeConfig{Width: 0, Height: 10}},
			want: simulation.ErrInvalidDimensions,
		},
		{
			name: "no heading",
			file: File{Lake: LakeConfig{100, 100}, Boats: []BoatConfig{
				{Name: "A", Radius: 5, MaxSpeed: 10, Position: pos},
			}},
			want: ErrNoHeading,
		},
		{
			name: "two headings",
			file: File{Lake: LakeConfig{100, 100}, Boats: []BoatConfig{
				{Name: "A", Radius: 5, MaxSpeed: 10, Position: pos, Direction: &dir, Target: &target},
			}},
			want: ErrAmbiguousHeading,
		},
		{
			name: "invalid boat",
			file: File{Lake: LakeConfig{100, 100}, Boats: []BoatConfig{
				{Name: "A", Radius: 5, Speed: 20, MaxSpeed: 10, Position: pos, Direction: &dir},
			}},
			want: simulation.ErrInvalidSpeed,
		},
		{
			name: "target on the boat",
			file: File{Lake: LakeConfig{100, 100}, Boats: []BoatConfig{
				{Name: "A", Radius: 5, MaxSpeed: 10, Position: pos, Target: &pos},
			}},
			want: common.ErrZeroVector,
		},
		{
			name: "boat too large",
			file: File{Lake: LakeConfig{100, 100}, Boats: []BoatConfig{
				{Name: "A", Radius: 5, MaxSpeed: 10, Position: pos, Direction: &dir},
				{Name: "B", Radius: 60, MaxSpeed: 10, Position: pos, Direction: &dir},
			}},
			want: simulation.ErrBoatTooLarge,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lake, err := tt.file.Build()
			assert.Nil(t, lake)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestBuildErrorNamesBoat(t *testing.T) {
	dir := common.NewVector(1, 0)
	f := File{Lake: LakeConfig{100, 100}, Boats: []BoatConfig{
		{Name: "A", Radius: 5, MaxSpeed: 10, Direction: &dir},
		{Name: "B", Radius: 0, MaxSpeed: 10, Direction: &dir},
	}}

	_, err := f.Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `boat 1 ("B")`)
}
