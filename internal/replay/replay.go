// Package replay rebuilds dated snapshots of some state by
// folding a log of dated actions into it.
package replay

import (
	"folio/internal/util"
	"sort"
	"time"
)

type Dated interface {
	GetDate() time.Time
}

// Copier is implemented by replayable state. Copy must
// return a value that shares nothing mutable with the receiver
type Copier[S any] interface {
	Copy() S
}

// ApplyFunc folds one action into the state
type ApplyFunc[S any, A Dated] func(state S, action A) (S, error)

// SnapshotFunc captures the state at the end of day `on`.
// It returns the emitted snapshot and the state to keep
// folding into, which lets folds reset accumulators per period
type SnapshotFunc[S any] func(state S, on time.Time) (snapshot S, next S)

// CopyOnSnapshot emits a copy and keeps folding into the
// original state
func CopyOnSnapshot[S Copier[S]](state S, on time.Time) (S, S) {
	return state.Copy(), state
}

// Replay folds actions into a copy of initial and returns the
// state as of each target date, keyed by util.DateStr.
//
// Actions and target dates may come in any order; both are
// sorted here. Actions on the same day keep their input order.
// An action belongs to every target date on or after its day.
// Errors from apply are returned as is and nothing is rolled back
func Replay[S Copier[S], A Dated](
	initial S,
	actions []A,
	targetDates []time.Time,
	apply ApplyFunc[S, A],
	snapshot SnapshotFunc[S],
) (map[string]S, error) {
	out := map[string]S{}
	dates := normalizeDates(targetDates)
	if len(dates) == 0 {
		return out, nil
	}

	sorted := make([]A, len(actions))
	copy(sorted, actions)
	sort.SliceStable(sorted, func(i, j int) bool {
		return util.StartOfDay(sorted[i].GetDate()).Before(util.StartOfDay(sorted[j].GetDate()))
	})

	state := initial.Copy()
	next := 0

	for _, action := range sorted {
		day := util.StartOfDay(action.GetDate())
		for next < len(dates) && day.After(dates[next]) {
			var snap S
			snap, state = snapshot(state, dates[next])
			out[util.DateStr(dates[next])] = snap
			next++
		}
		if next == len(dates) {
			// nothing left to emit
			break
		}

		var err error
		state, err = apply(state, action)
		if err != nil {
			return nil, err
		}
	}

	for ; next < len(dates); next++ {
		var snap S
		snap, state = snapshot(state, dates[next])
		out[util.DateStr(dates[next])] = snap
	}

	return out, nil
}

func normalizeDates(dates []time.Time) []time.Time {
	seen := util.NewSet()
	out := make([]time.Time, 0, len(dates))
	for _, d := range dates {
		day := util.StartOfDay(d)
		if seen.Add(util.DateStr(day)) {
			out = append(out, day)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Before(out[j])
	})
	return out
}
