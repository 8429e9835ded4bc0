package cleanup

import "time"

// Resolution is the freshness classification of a scan.
type Resolution struct {
	Cutoff  time.Time  // projects modified before Cutoff are stale
	Stale   []*Project // in scan order
	Fresh   []*Project // in scan order
	Targets []string   // targets of stale projects, project order then discovery order
}

// Resolve classifies projects against now-threshold and collects the
// targets of stale projects. Freshness is decided per project: targets of a
// fresh project are preserved even when they are old themselves.
func Resolve(projects []*Project, threshold time.Duration, now time.Time) Resolution {
	res := Resolution{Cutoff: now.Add(-threshold)}

	for _, p := range projects {
		if p.IsFresh(res.Cutoff) {
			res.Fresh = append(res.Fresh, p)
			continue
		}
		res.Stale = append(res.Stale, p)
		res.Targets = append(res.Targets, p.Targets...)
	}

	return res
}
