package roster

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRecord(id int, name string, grade float64) *StudentRecord {
	return NewStudentRecord(id, name, KindUndergraduate, grade, "Computer Science")
}

func TestNewRoster(t *testing.T) {
	r := NewRoster()

	assert.NotNil(t, r)
	assert.Equal(t, 0, r.Size())
	assert.Empty(t, r.Records())
}

func TestRoster_Add(t *testing.T) {
	r := NewRoster()

	err := r.Add(newTestRecord(1, "Alice", 90.0))
	require.NoError(t, err)
	err = r.Add(newTestRecord(2, "Bob", 80.0))
	require.NoError(t, err)

	assert.Equal(t, 2, r.Size())
	assert.True(t, r.Contains(1))
	assert.True(t, r.Contains(2))
}

func TestRoster_Add_DistinctRecordsGrowSize(t *testing.T) {
	r := NewRoster()

	for i := 1; i <= 50; i++ {
		err := r.Add(newTestRecord(i, fmt.Sprintf("Student %d", i), float64(i)))
		require.NoError(t, err)
	}

	assert.Equal(t, 50, r.Size())
}

func TestRoster_Add_DuplicateID(t *testing.T) {
	r := NewRoster()
	require.NoError(t, r.Add(newTestRecord(1, "Alice", 90.0)))

	err := r.Add(newTestRecord(1, "Bob", 80.0))
	assert.ErrorIs(t, err, ErrDuplicateID)
	assert.Contains(t, err.Error(), "1")

	// Failed add leaves size, contents, and indexes unchanged.
	assert.Equal(t, 1, r.Size())
	assert.Equal(t, "Alice", r.Records()[0].Name())
	assert.True(t, r.Contains(1))
	_, findErr := r.Find(FindQuery{Name: "Bob"})
	assert.ErrorIs(t, findErr, ErrStudentNotFound)
}

func TestRoster_Add_DuplicateName_CaseInsensitive(t *testing.T) {
	r := NewRoster()
	require.NoError(t, r.Add(newTestRecord(1, "Bob", 80.0)))

	err := r.Add(newTestRecord(2, "bob", 70.0))
	assert.ErrorIs(t, err, ErrDuplicateName)

	err = r.Add(newTestRecord(3, "BOB", 60.0))
	assert.ErrorIs(t, err, ErrDuplicateName)

	assert.Equal(t, 1, r.Size())
	assert.False(t, r.Contains(2))
	assert.False(t, r.Contains(3))
}

func TestRoster_Remove(t *testing.T) {
	r := NewRoster()
	require.NoError(t, r.Add(newTestRecord(1, "Alice", 90.0)))
	require.NoError(t, r.Add(newTestRecord(2, "Bob", 80.0)))

	err := r.Remove(1)
	require.NoError(t, err)

	assert.Equal(t, 1, r.Size())
	assert.False(t, r.Contains(1))
	assert.Equal(t, "Bob", r.Records()[0].Name())

	// The name index must be released along with the record.
	require.NoError(t, r.Add(newTestRecord(3, "Alice", 85.0)))
}

func TestRoster_Remove_NotFound(t *testing.T) {
	r := NewRoster()
	require.NoError(t, r.Add(newTestRecord(1, "Alice", 90.0)))

	err := r.Remove(99)
	assert.ErrorIs(t, err, ErrStudentNotFound)
	assert.Equal(t, 1, r.Size())
}

func TestRoster_AddRemoveRoundTrip(t *testing.T) {
	r := NewRoster()
	require.NoError(t, r.Add(newTestRecord(1, "Alice", 90.0)))

	require.NoError(t, r.Add(newTestRecord(2, "Bob", 80.0)))
	require.NoError(t, r.Remove(2))

	assert.Equal(t, 1, r.Size())
	assert.False(t, r.Contains(2))

	// Both index entries must be free again.
	require.NoError(t, r.Add(newTestRecord(2, "Bob", 80.0)))
	assert.Equal(t, 2, r.Size())
}

func TestRoster_Find_ByName(t *testing.T) {
	r := NewRoster()
	require.NoError(t, r.Add(newTestRecord(1, "Alice", 90.0)))
	require.NoError(t, r.Add(newTestRecord(2, "Bob", 80.0)))

	rec, err := r.Find(FindQuery{Name: "alice"})
	require.NoError(t, err)
	assert.Equal(t, 1, rec.ID())

	rec, err = r.Find(FindQuery{Name: "BOB"})
	require.NoError(t, err)
	assert.Equal(t, 2, rec.ID())
}

func TestRoster_Find_NameWinsOverID(t *testing.T) {
	r := NewRoster()
	require.NoError(t, r.Add(newTestRecord(1, "Alice", 90.0)))
	require.NoError(t, r.Add(newTestRecord(2, "Bob", 80.0)))

	id := 2
	rec, err := r.Find(FindQuery{Name: "Alice", ID: &id})
	require.NoError(t, err)
	assert.Equal(t, 1, rec.ID())
}

func TestRoster_Find_ByID(t *testing.T) {
	r := NewRoster()
	require.NoError(t, r.Add(newTestRecord(1, "Alice", 90.0)))

	id := 1
	rec, err := r.Find(FindQuery{ID: &id})
	require.NoError(t, err)
	assert.Equal(t, "Alice", rec.Name())
}

func TestRoster_Find_NoMatch(t *testing.T) {
	r := NewRoster()
	require.NoError(t, r.Add(newTestRecord(1, "Alice", 90.0)))

	_, err := r.Find(FindQuery{Name: "Nobody"})
	assert.ErrorIs(t, err, ErrStudentNotFound)

	id := 42
	_, err = r.Find(FindQuery{ID: &id})
	assert.ErrorIs(t, err, ErrStudentNotFound)
}

func TestRoster_Find_NoCriteria(t *testing.T) {
	r := NewRoster()
	require.NoError(t, r.Add(newTestRecord(1, "Alice", 90.0)))

	// Blank name and absent id match nothing rather than a default record.
	_, err := r.Find(FindQuery{})
	assert.ErrorIs(t, err, ErrStudentNotFound)
}

func TestRoster_AverageGrade_Empty(t *testing.T) {
	r := NewRoster()
	assert.Equal(t, 0.0, r.AverageGrade())
}

func TestRoster_AverageGrade(t *testing.T) {
	r := NewRoster()
	grades := []float64{11.0, 56.0, 33.0, 33.0, 11.0}
	for i, g := range grades {
		require.NoError(t, r.Add(newTestRecord(i+1, fmt.Sprintf("Student %d", i+1), g)))
	}

	assert.InDelta(t, 28.8, r.AverageGrade(), 1e-9)
}

func TestRoster_TopGrade(t *testing.T) {
	r := NewRoster()
	grades := []float64{11.0, 56.0, 33.0, 33.0, 11.0, 56.0}
	for i, g := range grades {
		require.NoError(t, r.Add(newTestRecord(i+1, fmt.Sprintf("Student %d", i+1), g)))
	}

	top := r.TopGrade()
	require.Len(t, top, 2)
	assert.Equal(t, 2, top[0].ID())
	assert.Equal(t, 6, top[1].ID())
	assert.Equal(t, 56.0, top[0].Grade())
	assert.Equal(t, 56.0, top[1].Grade())
}

func TestRoster_BottomGrade(t *testing.T) {
	r := NewRoster()
	grades := []float64{11.0, 56.0, 33.0, 33.0, 11.0, 56.0}
	for i, g := range grades {
		require.NoError(t, r.Add(newTestRecord(i+1, fmt.Sprintf("Student %d", i+1), g)))
	}

	bottom := r.BottomGrade()
	require.Len(t, bottom, 2)
	assert.Equal(t, 1, bottom[0].ID())
	assert.Equal(t, 5, bottom[1].ID())
}

func TestRoster_TopBottomGrade_Empty(t *testing.T) {
	r := NewRoster()

	assert.Empty(t, r.TopGrade())
	assert.Empty(t, r.BottomGrade())
}

func TestRoster_TopBottomGrade_SingleRecord(t *testing.T) {
	r := NewRoster()
	require.NoError(t, r.Add(newTestRecord(1, "Alice", 90.0)))

	top := r.TopGrade()
	bottom := r.BottomGrade()
	require.Len(t, top, 1)
	require.Len(t, bottom, 1)
	assert.Equal(t, top[0], bottom[0])
}

func TestRoster_Records_InsertionOrder(t *testing.T) {
	r := NewRoster()
	require.NoError(t, r.Add(newTestRecord(3, "Carol", 70.0)))
	require.NoError(t, r.Add(newTestRecord(1, "Alice", 90.0)))
	require.NoError(t, r.Add(newTestRecord(2, "Bob", 80.0)))

	records := r.Records()
	require.Len(t, records, 3)
	assert.Equal(t, []int{3, 1, 2}, []int{records[0].ID(), records[1].ID(), records[2].ID()})
}

func TestRoster_Records_Snapshot(t *testing.T) {
	r := NewRoster()
	require.NoError(t, r.Add(newTestRecord(1, "Alice", 90.0)))

	records := r.Records()
	require.NoError(t, r.Add(newTestRecord(2, "Bob", 80.0)))

	assert.Len(t, records, 1)
	assert.Equal(t, 2, r.Size())
}

func TestRoster_List_Iterator(t *testing.T) {
	r := NewRoster()
	require.NoError(t, r.Add(newTestRecord(1, "Alice", 90.0)))
	require.NoError(t, r.Add(newTestRecord(2, "Bob", 80.0)))

	it := r.List()
	assert.Nil(t, it.Record())

	var ids []int
	for it.Next() {
		ids = append(ids, it.Record().ID())
	}
	assert.Equal(t, []int{1, 2}, ids)

	assert.False(t, it.Next())
	assert.Nil(t, it.Record())
}

func TestRoster_List_Restartable(t *testing.T) {
	r := NewRoster()
	require.NoError(t, r.Add(newTestRecord(1, "Alice", 90.0)))
	require.NoError(t, r.Add(newTestRecord(2, "Bob", 80.0)))

	collect := func(it *Iterator) []int {
		var ids []int
		for it.Next() {
			ids = append(ids, it.Record().ID())
		}
		return ids
	}

	it := r.List()
	first := collect(it)

	it.Reset()
	second := collect(it)
	assert.Equal(t, first, second)

	// A fresh List call is an independent iterator.
	assert.Equal(t, first, collect(r.List()))
}

func TestRoster_List_Empty(t *testing.T) {
	r := NewRoster()

	it := r.List()
	assert.False(t, it.Next())
	assert.Nil(t, it.Record())
}
