package pkg

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type spillRecord struct {
	Name    string
	Line    int
	Details *spillDetails
}

type spillDetails struct {
	Message string
}

func TestFileSpill(t *testing.T) {
	t.Run("NewFileSpill creates file in dir", func(t *testing.T) {
		dir := t.TempDir()

		spill, err := NewFileSpill[int](dir)
		require.NoError(t, err)
		defer spill.Close()

		require.True(t, strings.HasPrefix(spill.Path(), dir))

		_, err = os.Stat(spill.Path())
		require.NoError(t, err)
	})

	t.Run("Len returns correct count", func(t *testing.T) {
		spill, err := NewFileSpill[int](t.TempDir())
		require.NoError(t, err)
		defer spill.Close()

		require.Equal(t, uint64(0), spill.Len())

		require.NoError(t, spill.Append(1))
		require.Equal(t, uint64(1), spill.Len())

		require.NoError(t, spill.Append(2))
		require.NoError(t, spill.Append(3))
		require.Equal(t, uint64(3), spill.Len())
	})

	t.Run("Range iterates all items in order", func(t *testing.T) {
		spill, err := NewFileSpill[string](t.TempDir())
		require.NoError(t, err)
		defer spill.Close()

		for _, item := range []string{"a.cpp", "b.cpp", "c.cpp"} {
			require.NoError(t, spill.Append(item))
		}

		var got []string
		err = spill.Range(func(index uint64, item string) error {
			require.Equal(t, uint64(len(got)), index)
			got = append(got, item)
			return nil
		})
		require.NoError(t, err)
		require.Equal(t, []string{"a.cpp", "b.cpp", "c.cpp"}, got)
	})

	t.Run("Range does not leak fields between items", func(t *testing.T) {
		spill, err := NewFileSpill[spillRecord](t.TempDir())
		require.NoError(t, err)
		defer spill.Close()

		require.NoError(t, spill.Append(spillRecord{Name: "bad.cpp", Line: 7, Details: &spillDetails{Message: "lonely"}}))
		require.NoError(t, spill.Append(spillRecord{Name: "good.cpp"}))

		var got []spillRecord
		require.NoError(t, spill.Range(func(_ uint64, item spillRecord) error {
			got = append(got, item)
			return nil
		}))

		require.Len(t, got, 2)
		require.NotNil(t, got[0].Details)
		require.Equal(t, "good.cpp", got[1].Name)
		require.Zero(t, got[1].Line)
		require.Nil(t, got[1].Details)
	})

	t.Run("Range callback error stops iteration", func(t *testing.T) {
		spill, err := NewFileSpill[int](t.TempDir())
		require.NoError(t, err)
		defer spill.Close()

		for i := range 5 {
			require.NoError(t, spill.Append(i))
		}

		stop := errors.New("stop")
		visited := 0
		err = spill.Range(func(_ uint64, item int) error {
			visited++
			if item == 2 {
				return stop
			}
			return nil
		})
		require.ErrorIs(t, err, stop)
		require.Equal(t, 3, visited)
	})

	t.Run("Close removes the file and rejects appends", func(t *testing.T) {
		spill, err := NewFileSpill[int](t.TempDir())
		require.NoError(t, err)

		require.NoError(t, spill.Append(1))
		require.NoError(t, spill.Close())

		_, err = os.Stat(spill.Path())
		require.True(t, os.IsNotExist(err))

		require.Error(t, spill.Append(2))
		require.NoError(t, spill.Close())
	})

	t.Run("empty filespill range returns no items", func(t *testing.T) {
		spill, err := NewFileSpill[int](t.TempDir())
		require.NoError(t, err)
		defer spill.Close()

		called := false
		require.NoError(t, spill.Range(func(uint64, int) error {
			called = true
			return nil
		}))
		require.False(t, called)
	})
}
