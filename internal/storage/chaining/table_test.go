package chaining

import (
	"fmt"
	"github.com/gostonefire/coursecatalog/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"math/rand"
	"sort"
	"testing"
)

// collidingHash - Sends every key to the same bucket
type collidingHash struct {
	tableSize int64
	bucketNo  int64
}

func (C *collidingHash) SetTableSize(tableSize int64) { C.tableSize = tableSize }
func (C *collidingHash) HashFunc1(_ []byte) int64     { return C.bucketNo }
func (C *collidingHash) GetTableSize() int64          { return C.tableSize }

func newCollidingTable(t *testing.T, bucketNo int64) *Table {
	table, err := NewTable(model.TableConf{NumberOfBucketsNeeded: 10, HashAlgorithm: &collidingHash{bucketNo: bucketNo}})
	require.NoError(t, err, "create colliding table")
	return table
}

func course(number string, prerequisites ...string) model.Course {
	return model.Course{Number: number, Title: "Title of " + number, Prerequisites: prerequisites}
}

func TestNewTable(t *testing.T) {
	t.Run("creates a new table with internal hash algorithm", func(t *testing.T) {
		// Execute
		table, err := NewTable(model.TableConf{NumberOfBucketsNeeded: 179})

		// Check
		assert.NoError(t, err, "create new table")
		assert.Len(t, table.slots, 179, "correct number of slots")
		assert.Equal(t, int64(0), table.Len(), "table is empty")

		sp := table.GetTableParameters()
		assert.Equal(t, int64(179), sp.NumberOfBucketsNeeded, "buckets needed preserved")
		assert.Equal(t, int64(179), sp.NumberOfBucketsAvailable, "buckets available")
		assert.True(t, sp.InternalAlgorithm, "indicates using internal hash algorithm")
	})

	t.Run("uses table size reported by custom hash algorithm", func(t *testing.T) {
		// Execute
		table, err := NewTable(model.TableConf{NumberOfBucketsNeeded: 7, HashAlgorithm: &collidingHash{}})

		// Check
		assert.NoError(t, err, "create new table")
		sp := table.GetTableParameters()
		assert.Equal(t, int64(7), sp.NumberOfBucketsAvailable, "buckets available")
		assert.False(t, sp.InternalAlgorithm, "indicates using custom hash algorithm")
	})

	t.Run("rejects invalid sizes", func(t *testing.T) {
		// Execute
		_, errZero := NewTable(model.TableConf{NumberOfBucketsNeeded: 0})
		_, errNegative := NewTable(model.TableConf{NumberOfBucketsNeeded: -5})
		_, errHuge := NewTable(model.TableConf{NumberOfBucketsNeeded: MaxTableSize + 1})

		// Check
		assert.Error(t, errZero, "zero buckets")
		assert.Error(t, errNegative, "negative buckets")
		assert.Error(t, errHuge, "too many buckets")
	})
}

func TestTable_Insert(t *testing.T) {
	t.Run("inserts into empty slot as head", func(t *testing.T) {
		// Prepare
		table := newCollidingTable(t, 3)

		// Execute
		err := table.Insert(course("CS100"))

		// Check
		assert.NoError(t, err, "inserts course")
		assert.Equal(t, model.SlotOccupied, table.slots[3].State, "slot occupied")
		assert.Equal(t, int64(3), table.slots[3].Key, "slot key is bucket number")
		assert.Equal(t, "CS100", table.slots[3].Head.Number, "head set")
		assert.Empty(t, table.slots[3].Chain, "no chain")
		assert.Equal(t, int64(1), table.Len(), "one record")
	})

	t.Run("appends collisions to chain in insertion order", func(t *testing.T) {
		// Prepare
		table := newCollidingTable(t, 3)

		// Execute
		for _, n := range []string{"CS100", "CS200", "CS300"} {
			assert.NoError(t, table.Insert(course(n)), "inserts course")
		}

		// Check
		assert.Equal(t, "CS100", table.slots[3].Head.Number, "head is first inserted")
		require.Len(t, table.slots[3].Chain, 2, "two in chain")
		assert.Equal(t, "CS200", table.slots[3].Chain[0].Number, "chain order")
		assert.Equal(t, "CS300", table.slots[3].Chain[1].Number, "chain order")
	})

	t.Run("keeps duplicates as separate entries", func(t *testing.T) {
		// Prepare
		table := newCollidingTable(t, 0)

		// Execute
		assert.NoError(t, table.Insert(model.Course{Number: "CS100", Title: "First"}), "inserts course")
		assert.NoError(t, table.Insert(model.Course{Number: "CS100", Title: "Second"}), "inserts duplicate")

		// Check
		assert.Equal(t, int64(2), table.Len(), "two records")
		c, found, err := table.Search("CS100")
		assert.NoError(t, err, "searches")
		assert.True(t, found, "found")
		assert.Equal(t, "First", c.Title, "first inserted wins on search")
	})

	t.Run("rejects empty course number", func(t *testing.T) {
		// Prepare
		table := newCollidingTable(t, 0)

		// Execute
		err := table.Insert(model.Course{Title: "No number"})

		// Check
		assert.Error(t, err, "empty number rejected")
		assert.Equal(t, int64(0), table.Len(), "nothing inserted")
	})

	t.Run("fails on hash algorithm out of range", func(t *testing.T) {
		// Prepare
		table := newCollidingTable(t, 10)

		// Execute
		err := table.Insert(course("CS100"))

		// Check
		assert.Error(t, err, "bucket number out of range")
	})

	t.Run("stored course is not aliased by caller", func(t *testing.T) {
		// Prepare
		table := newCollidingTable(t, 0)
		c := course("CS200", "CS100")

		// Execute
		assert.NoError(t, table.Insert(c), "inserts course")
		c.Prerequisites[0] = "XX"

		// Check
		stored, found, _ := table.Search("CS200")
		assert.True(t, found, "found")
		assert.Equal(t, []string{"CS100"}, stored.Prerequisites, "prerequisites untouched")
	})
}

func TestTable_Search(t *testing.T) {
	t.Run("finds inserted courses with matching data", func(t *testing.T) {
		// Prepare
		table, err := NewTable(model.TableConf{NumberOfBucketsNeeded: 5})
		require.NoError(t, err, "create table")
		courses := make([]model.Course, 0, 50)
		for i := 0; i < 50; i++ {
			c := course(fmt.Sprintf("CS%03d", i), fmt.Sprintf("MATH%03d", i), fmt.Sprintf("ENG%03d", i))
			courses = append(courses, c)
			require.NoError(t, table.Insert(c), "inserts course")
		}

		// Execute and Check
		for _, c := range courses {
			got, found, err := table.Search(c.Number)
			assert.NoError(t, err, "searches")
			assert.True(t, found, "found %s", c.Number)
			assert.Equal(t, c.Title, got.Title, "title matches")
			assert.Equal(t, c.Prerequisites, got.Prerequisites, "prerequisites match")
		}
	})

	t.Run("returns not found for missing course", func(t *testing.T) {
		// Prepare
		table := newCollidingTable(t, 1)
		require.NoError(t, table.Insert(course("CS100")), "inserts course")

		// Execute
		c, found, err := table.Search("CS999")

		// Check
		assert.NoError(t, err, "searches")
		assert.False(t, found, "not found")
		assert.Equal(t, model.Course{}, c, "zero course")
	})

	t.Run("distinguishes not found from empty title", func(t *testing.T) {
		// Prepare
		table := newCollidingTable(t, 1)
		require.NoError(t, table.Insert(model.Course{Number: "CS100"}), "inserts course")

		// Execute
		c, found, err := table.Search("CS100")

		// Check
		assert.NoError(t, err, "searches")
		assert.True(t, found, "found although title is empty")
		assert.Equal(t, "", c.Title, "empty title")
	})
}

func TestTable_Remove(t *testing.T) {
	t.Run("removing only head empties slot", func(t *testing.T) {
		// Prepare
		table := newCollidingTable(t, 2)
		require.NoError(t, table.Insert(course("CS100")), "inserts course")

		// Execute
		removed, err := table.Remove("CS100")

		// Check
		assert.NoError(t, err, "removes")
		assert.True(t, removed, "removed")
		assert.Equal(t, model.Slot{}, table.slots[2], "slot reset to empty")
		assert.Equal(t, int64(0), table.Len(), "table empty")
		_, found, _ := table.Search("CS100")
		assert.False(t, found, "no longer found")
	})

	t.Run("removing head promotes first chain element", func(t *testing.T) {
		// Prepare
		table := newCollidingTable(t, 2)
		for _, n := range []string{"CS100", "CS200", "CS300"} {
			require.NoError(t, table.Insert(course(n)), "inserts course")
		}

		// Execute
		removed, err := table.Remove("CS100")

		// Check
		assert.NoError(t, err, "removes")
		assert.True(t, removed, "removed")
		assert.Equal(t, model.SlotOccupied, table.slots[2].State, "slot still occupied")
		assert.Equal(t, "CS200", table.slots[2].Head.Number, "chain element promoted")
		require.Len(t, table.slots[2].Chain, 1, "one left in chain")
		assert.Equal(t, "CS300", table.slots[2].Chain[0].Number, "rest of chain kept")
	})

	t.Run("removes from middle of chain", func(t *testing.T) {
		// Prepare
		table := newCollidingTable(t, 2)
		for _, n := range []string{"CS100", "CS200", "CS300", "CS400"} {
			require.NoError(t, table.Insert(course(n)), "inserts course")
		}

		// Execute
		removed, err := table.Remove("CS300")

		// Check
		assert.NoError(t, err, "removes")
		assert.True(t, removed, "removed")
		numbers := make([]string, 0)
		for _, c := range table.Export() {
			numbers = append(numbers, c.Number)
		}
		assert.Equal(t, []string{"CS100", "CS200", "CS400"}, numbers, "order kept")
	})

	t.Run("removing last chain element clears chain", func(t *testing.T) {
		// Prepare
		table := newCollidingTable(t, 2)
		require.NoError(t, table.Insert(course("CS100")), "inserts course")
		require.NoError(t, table.Insert(course("CS200")), "inserts course")

		// Execute
		removed, err := table.Remove("CS200")

		// Check
		assert.NoError(t, err, "removes")
		assert.True(t, removed, "removed")
		assert.Nil(t, table.slots[2].Chain, "chain released")
	})

	t.Run("removes only first of duplicates", func(t *testing.T) {
		// Prepare
		table := newCollidingTable(t, 0)
		require.NoError(t, table.Insert(model.Course{Number: "CS100", Title: "First"}), "inserts course")
		require.NoError(t, table.Insert(model.Course{Number: "CS100", Title: "Second"}), "inserts duplicate")

		// Execute
		removed, err := table.Remove("CS100")

		// Check
		assert.NoError(t, err, "removes")
		assert.True(t, removed, "removed")
		c, found, _ := table.Search("CS100")
		assert.True(t, found, "duplicate remains")
		assert.Equal(t, "Second", c.Title, "second entry remains")
	})

	t.Run("removing nonexistent key is a no-op", func(t *testing.T) {
		// Prepare
		table, err := NewTable(model.TableConf{NumberOfBucketsNeeded: 3})
		require.NoError(t, err, "create table")
		for _, n := range []string{"CS100", "CS200", "CS300", "CS400"} {
			require.NoError(t, table.Insert(course(n)), "inserts course")
		}
		before := table.Export()

		// Execute
		removed, err := table.Remove("CS999")

		// Check
		assert.NoError(t, err, "no error")
		assert.False(t, removed, "nothing removed")
		assert.Equal(t, int64(4), table.Len(), "size unchanged")
		assert.Equal(t, before, table.Export(), "entries unchanged")
	})

	t.Run("removing from empty table is a no-op", func(t *testing.T) {
		// Prepare
		table := newCollidingTable(t, 0)

		// Execute
		removed, err := table.Remove("CS100")

		// Check
		assert.NoError(t, err, "no error")
		assert.False(t, removed, "nothing removed")
	})
}

func TestTable_Export(t *testing.T) {
	t.Run("exports in bucket order with head before chain", func(t *testing.T) {
		// Prepare
		table, err := NewTable(model.TableConf{NumberOfBucketsNeeded: 179})
		require.NoError(t, err, "create table")
		// CS101 hashes to 159 and CS100 to 99
		require.NoError(t, table.Insert(course("CS101", "CS100")), "inserts course")
		require.NoError(t, table.Insert(course("CS100")), "inserts course")

		// Execute
		courses := table.Export()

		// Check
		require.Len(t, courses, 2, "two courses")
		assert.Equal(t, "CS100", courses[0].Number, "lower bucket first")
		assert.Equal(t, "CS101", courses[1].Number, "higher bucket last")
	})

	t.Run("exports every inserted course exactly once", func(t *testing.T) {
		// Prepare
		table, err := NewTable(model.TableConf{NumberOfBucketsNeeded: 13})
		require.NoError(t, err, "create table")
		inserted := make([]string, 0, 500)
		for i := 0; i < 500; i++ {
			n := fmt.Sprintf("C%d", rand.Intn(100000))
			inserted = append(inserted, n)
			require.NoError(t, table.Insert(course(n)), "inserts course")
		}

		// Execute
		courses := table.Export()

		// Check
		exported := make([]string, 0, len(courses))
		for _, c := range courses {
			exported = append(exported, c.Number)
		}
		sort.Strings(inserted)
		sort.Strings(exported)
		assert.Equal(t, inserted, exported, "same multiset of numbers")
	})

	t.Run("exports empty table as empty sequence", func(t *testing.T) {
		// Prepare
		table := newCollidingTable(t, 0)

		// Execute
		courses := table.Export()

		// Check
		assert.NotNil(t, courses, "not nil")
		assert.Empty(t, courses, "empty")
	})
}

func TestTable_GetBucket(t *testing.T) {
	t.Run("returns head and overflow iterator", func(t *testing.T) {
		// Prepare
		table := newCollidingTable(t, 4)
		for _, n := range []string{"CS100", "CS200", "CS300"} {
			require.NoError(t, table.Insert(course(n)), "inserts course")
		}

		// Execute
		slot, iter, err := table.GetBucket(4)

		// Check
		assert.NoError(t, err, "gets bucket")
		assert.Equal(t, model.SlotOccupied, slot.State, "occupied")
		assert.Equal(t, "CS100", slot.Head.Number, "head")
		var chain []string
		for iter.HasNext() {
			c, err := iter.Next()
			assert.NoError(t, err, "next")
			chain = append(chain, c.Number)
		}
		assert.Equal(t, []string{"CS200", "CS300"}, chain, "chain")
	})

	t.Run("empty bucket has no overflow", func(t *testing.T) {
		// Prepare
		table := newCollidingTable(t, 4)

		// Execute
		slot, iter, err := table.GetBucket(0)

		// Check
		assert.NoError(t, err, "gets bucket")
		assert.Equal(t, model.SlotEmpty, slot.State, "empty")
		assert.False(t, iter.HasNext(), "no overflow")
	})

	t.Run("fails outside range", func(t *testing.T) {
		// Prepare
		table := newCollidingTable(t, 4)

		// Execute
		_, _, errLow := table.GetBucket(-1)
		_, _, errHigh := table.GetBucket(10)

		// Check
		assert.Error(t, errLow, "negative bucket")
		assert.Error(t, errHigh, "bucket past end")
	})
}

func TestTable_GetBucketNo(t *testing.T) {
	t.Run("every course in a slot hashes to that slot", func(t *testing.T) {
		// Prepare
		table, err := NewTable(model.TableConf{NumberOfBucketsNeeded: 11})
		require.NoError(t, err, "create table")
		for i := 0; i < 200; i++ {
			require.NoError(t, table.Insert(course(fmt.Sprintf("CSCI%d", i))), "inserts course")
		}

		// Execute and Check
		for i := int64(0); i < 11; i++ {
			slot, iter, err := table.GetBucket(i)
			require.NoError(t, err, "gets bucket")
			if slot.State == model.SlotEmpty {
				continue
			}
			assert.Equal(t, i, slot.Key, "slot key")
			bucketNo, _ := table.GetBucketNo(slot.Head.Number)
			assert.Equal(t, i, bucketNo, "head hashes to slot")
			for iter.HasNext() {
				c, _ := iter.Next()
				bucketNo, _ = table.GetBucketNo(c.Number)
				assert.Equal(t, i, bucketNo, "chain element hashes to slot")
			}
		}
	})
}
