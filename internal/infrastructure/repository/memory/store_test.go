package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/baseball-stats/internal/domain/playerstats"
	"github.com/riskibarqy/baseball-stats/internal/domain/position"
	"github.com/riskibarqy/baseball-stats/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedPlayer(t *testing.T, repos usecase.Repositories, name, abbr string, counts playerstats.Counts) int64 {
	t.Helper()
	ctx := context.Background()

	pos, err := repos.Positions.FirstOrCreate(ctx, position.New(abbr))
	require.NoError(t, err)
	p, err := repos.Players.UpsertByName(ctx, name)
	require.NoError(t, err)
	_, err = repos.Statistics.UpsertByPlayerID(ctx, playerstats.Statistic{PlayerID: p.ID, PositionID: pos.ID, Counts: counts})
	require.NoError(t, err)
	return p.ID
}

func TestRunInTxRollsBackOnError(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	seedPlayer(t, store.Repositories(), "Kept", "SS", playerstats.Counts{Hits: 1})

	boom := errors.New("boom")
	err := store.RunInTx(ctx, func(ctx context.Context, repos usecase.Repositories) error {
		require.NoError(t, repos.Statistics.DeleteAll(ctx))
		require.NoError(t, repos.Players.DeleteAll(ctx))
		_, err := repos.Players.UpsertByName(ctx, "Discarded")
		require.NoError(t, err)
		return boom
	})
	require.ErrorIs(t, err, boom)

	items, err := store.Repositories().Statistics.ListSummaries(ctx, playerstats.ListQuery{Sort: playerstats.SortHits})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Kept", items[0].Name)
	assert.True(t, items[0].HasStatistics())
}

func TestRunInTxCommits(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	err := store.RunInTx(ctx, func(ctx context.Context, repos usecase.Repositories) error {
		seedPlayer(t, repos, "Committed", "C", playerstats.Counts{Games: 3})
		return nil
	})
	require.NoError(t, err)

	_, exists, err := store.Repositories().Players.GetByName(ctx, "Committed")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestPositionFirstOrCreateKeepsExisting(t *testing.T) {
	ctx := context.Background()
	repos := NewStore().Repositories()

	first, err := repos.Positions.FirstOrCreate(ctx, position.Position{Abbreviation: "SS", Name: "Shortstop"})
	require.NoError(t, err)
	second, err := repos.Positions.FirstOrCreate(ctx, position.Position{Abbreviation: "SS", Name: "Renamed"})
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, "Shortstop", second.Name)
}

func TestListSummariesOrdering(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	repos := store.Repositories()

	a := seedPlayer(t, repos, "Alpha", "LF", playerstats.Counts{Games: 10, Hits: 30})
	b := seedPlayer(t, repos, "Bravo", "RF", playerstats.Counts{Games: 0, Hits: 0})
	c := seedPlayer(t, repos, "Charlie", "CF", playerstats.Counts{Games: 20, Hits: 30})
	_, err := repos.Players.UpsertByName(ctx, "Delta")
	require.NoError(t, err)

	items, err := repos.Statistics.ListSummaries(ctx, playerstats.ListQuery{Sort: playerstats.SortHitsPerGame, Direction: playerstats.DirectionDesc})
	require.NoError(t, err)
	require.Len(t, items, 4)
	assert.Equal(t, []int64{a, c, b}, []int64{items[0].PlayerID, items[1].PlayerID, items[2].PlayerID})
	assert.Equal(t, "Delta", items[3].Name)
	assert.False(t, items[3].HasStatistics())
	require.NotNil(t, items[2].HitsPerGame)
	assert.Zero(t, *items[2].HitsPerGame)

	items, err = repos.Statistics.ListSummaries(ctx, playerstats.ListQuery{Sort: playerstats.SortHits, Direction: playerstats.DirectionAsc})
	require.NoError(t, err)
	assert.Equal(t, []int64{b, a, c}, []int64{items[0].PlayerID, items[1].PlayerID, items[2].PlayerID})
	assert.Equal(t, "Delta", items[3].Name)
}

func TestUpsertStatisticsReplacesSingleRow(t *testing.T) {
	ctx := context.Background()
	repos := NewStore().Repositories()

	id := seedPlayer(t, repos, "Echo", "P", playerstats.Counts{Hits: 5})
	pos, err := repos.Positions.FirstOrCreate(ctx, position.New("C"))
	require.NoError(t, err)

	avg := 0.31249
	_, err = repos.Statistics.UpsertByPlayerID(ctx, playerstats.Statistic{
		PlayerID:   id,
		PositionID: pos.ID,
		Counts:     playerstats.Counts{Hits: 9},
		Rates:      playerstats.Rates{BattingAverage: &avg},
	})
	require.NoError(t, err)

	summary, exists, err := repos.Statistics.GetSummary(ctx, id)
	require.NoError(t, err)
	require.True(t, exists)
	assert.Equal(t, int64(9), *summary.Hits)
	assert.Equal(t, "C", *summary.Position)
	assert.Equal(t, 0.312, *summary.BattingAverage)
}
