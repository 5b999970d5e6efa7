package entries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/2beens/gymlog/internal/gymlog/entries"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newTestCollection(t *testing.T, existing []entries.Entry) (*entries.Collection, *MockStore) {
	t.Helper()
	ctrl := gomock.NewController(t)
	storeMock := NewMockStore(ctrl)
	storeMock.EXPECT().Load(gomock.Any()).Return(existing, nil)

	c, err := entries.NewCollection(context.Background(), storeMock)
	require.NoError(t, err)
	require.NotNil(t, c)
	return c, storeMock
}

func fakeLift(date string) entries.Entry {
	return entries.Entry{
		Exercise: gofakeit.RandomString(entries.Exercises(entries.CategoryLegs)),
		Date:     date,
		Weight:   float64(gofakeit.IntRange(45, 405)),
		Sets:     gofakeit.IntRange(1, 5),
		Reps:     gofakeit.IntRange(1, 12),
		RPE:      entries.ClampRPE(gofakeit.Float64Range(5, 10)),
		Comments: gofakeit.Sentence(4),
	}
}

func TestNewCollection_LoadError(t *testing.T) {
	ctrl := gomock.NewController(t)
	storeMock := NewMockStore(ctrl)
	storeMock.EXPECT().Load(gomock.Any()).Return(nil, errors.New("disk on fire"))

	c, err := entries.NewCollection(context.Background(), storeMock)
	assert.Error(t, err)
	assert.Nil(t, c)
}

func TestCollection_Append(t *testing.T) {
	c, storeMock := newTestCollection(t, nil)
	now := time.Date(2024, 1, 14, 10, 0, 0, 0, time.UTC)
	c.Now = func() time.Time { return now }

	var saved []entries.Entry
	storeMock.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, history []entries.Entry) error {
			saved = append([]entries.Entry{}, history...)
			return nil
		},
	)

	lift := fakeLift("2024-01-14")
	added, err := c.Append(context.Background(), lift)
	require.NoError(t, err)
	assert.Equal(t, now.UnixMilli(), added.ID)
	assert.Equal(t, lift.Exercise, added.Exercise)
	require.Len(t, saved, 1)
	assert.Equal(t, added, saved[0])
	assert.Equal(t, 1, c.Len())
}

func TestCollection_Append_IDCollision(t *testing.T) {
	now := time.Date(2024, 1, 14, 10, 0, 0, 0, time.UTC)
	existing := []entries.Entry{
		{ID: now.UnixMilli(), Exercise: "Back Squat", Date: "2024-01-14"},
		{ID: now.UnixMilli() + 5, Exercise: "Front Squat", Date: "2024-01-14"},
	}
	c, storeMock := newTestCollection(t, existing)
	c.Now = func() time.Time { return now }
	storeMock.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	added, err := c.Append(context.Background(), fakeLift("2024-01-14"))
	require.NoError(t, err)
	assert.Equal(t, now.UnixMilli()+6, added.ID)
}

func TestCollection_Append_StorageFailureRollsBack(t *testing.T) {
	existing := []entries.Entry{fakeLift("2024-01-07")}
	existing[0].ID = 1
	c, storeMock := newTestCollection(t, existing)
	storeMock.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("quota exceeded"))

	added, err := c.Append(context.Background(), fakeLift("2024-01-14"))
	assert.ErrorIs(t, err, entries.ErrStorageWrite)
	assert.Zero(t, added.ID)
	assert.Equal(t, existing, c.All())
}

func TestCollection_UpdateActivity(t *testing.T) {
	existing := []entries.Entry{
		{ID: 1, Exercise: entries.OtherActivity, Date: "2024-01-07", Comments: "run", BodyWeight: entries.Float(180)},
		{ID: 2, Exercise: "Back Squat", Date: "2024-01-07", Weight: 200, Sets: 3, Reps: 5},
	}
	c, storeMock := newTestCollection(t, existing)
	storeMock.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	updated, err := c.UpdateActivity(context.Background(), 1, entries.ActivityPatch{
		Comments: "long run",
		Date:     "2024-01-08",
	})
	require.NoError(t, err)
	assert.True(t, updated.Edited)
	assert.Equal(t, "long run", updated.Comments)
	assert.Equal(t, "2024-01-08", updated.Date)
	assert.Nil(t, updated.BodyWeight)

	got, ok := c.Get(1)
	require.True(t, ok)
	assert.Equal(t, updated, got)

	// lifts are never edited
	_, err = c.UpdateActivity(context.Background(), 2, entries.ActivityPatch{Comments: "x", Date: "2024-01-07"})
	assert.ErrorIs(t, err, entries.ErrNotEditable)

	_, err = c.UpdateActivity(context.Background(), 3, entries.ActivityPatch{Comments: "x", Date: "2024-01-07"})
	assert.ErrorIs(t, err, entries.ErrEntryNotFound)
}

func TestCollection_UpdateActivity_StorageFailureRollsBack(t *testing.T) {
	existing := []entries.Entry{
		{ID: 1, Exercise: entries.OtherActivity, Date: "2024-01-07", Comments: "run"},
	}
	c, storeMock := newTestCollection(t, existing)
	storeMock.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("read-only fs"))

	_, err := c.UpdateActivity(context.Background(), 1, entries.ActivityPatch{Comments: "swim", Date: "2024-01-08"})
	assert.ErrorIs(t, err, entries.ErrStorageWrite)

	got, ok := c.Get(1)
	require.True(t, ok)
	assert.Equal(t, existing[0], got)
	assert.False(t, got.Edited)
}

func TestCollection_Delete(t *testing.T) {
	existing := []entries.Entry{
		{ID: 1, Exercise: "Back Squat", Date: "2024-01-07"},
		{ID: 2, Exercise: "Front Squat", Date: "2024-01-08"},
		{ID: 3, Exercise: "Barbell Lunge", Date: "2024-01-09"},
	}
	c, storeMock := newTestCollection(t, existing)

	storeMock.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
	require.NoError(t, c.Delete(context.Background(), 2))
	all := c.All()
	require.Len(t, all, 2)
	assert.Equal(t, int64(1), all[0].ID)
	assert.Equal(t, int64(3), all[1].ID)

	assert.ErrorIs(t, c.Delete(context.Background(), 2), entries.ErrEntryNotFound)

	storeMock.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("nope"))
	assert.ErrorIs(t, c.Delete(context.Background(), 1), entries.ErrStorageWrite)
	assert.Len(t, c.All(), 2)
}

func TestCollection_DeleteAll(t *testing.T) {
	existing := []entries.Entry{
		{ID: 1, Exercise: "Back Squat", Date: "2024-01-07"},
		{ID: 2, Exercise: "Front Squat", Date: "2024-01-08"},
	}
	c, storeMock := newTestCollection(t, existing)

	storeMock.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("nope"))
	assert.ErrorIs(t, c.DeleteAll(context.Background()), entries.ErrStorageWrite)
	assert.Equal(t, 2, c.Len())

	storeMock.EXPECT().Save(gomock.Any(), []entries.Entry{}).Return(nil)
	require.NoError(t, c.DeleteAll(context.Background()))
	assert.Equal(t, 0, c.Len())
	assert.Empty(t, c.All())
}

func TestCollection_AllReturnsCopy(t *testing.T) {
	existing := []entries.Entry{{ID: 1, Exercise: "Back Squat", Date: "2024-01-07"}}
	c, _ := newTestCollection(t, existing)

	all := c.All()
	all[0].Exercise = "changed"

	got, ok := c.Get(1)
	require.True(t, ok)
	assert.Equal(t, "Back Squat", got.Exercise)
}

func TestCollection_BodyWeightIsNotShared(t *testing.T) {
	c, storeMock := newTestCollection(t, nil)
	storeMock.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	bw := 180.0
	saved, err := c.Append(context.Background(), entries.Entry{
		Exercise: entries.OtherActivity, Date: "2024-01-07", Comments: "weigh-in", BodyWeight: &bw,
	})
	require.NoError(t, err)

	bw = 250
	*saved.BodyWeight = 300
	*c.All()[0].BodyWeight = 400
	got, ok := c.Get(saved.ID)
	require.True(t, ok)
	*got.BodyWeight = 500

	got, ok = c.Get(saved.ID)
	require.True(t, ok)
	require.NotNil(t, got.BodyWeight)
	assert.Equal(t, 180.0, *got.BodyWeight)

	patchBW := 182.0
	updated, err := c.UpdateActivity(context.Background(), saved.ID, entries.ActivityPatch{
		Comments: "weigh-in", Date: "2024-01-08", BodyWeight: &patchBW,
	})
	require.NoError(t, err)
	patchBW = 260
	*updated.BodyWeight = 270

	got, ok = c.Get(saved.ID)
	require.True(t, ok)
	assert.Equal(t, 182.0, *got.BodyWeight)
}
