// Package calculator finds the signed combinations of named numeric series
// whose total lands closest to a goal.
//
// A dataset is a list of fields, each a name and one amount per period. Every
// subset of fields is tried with every assignment of + and - to the chosen
// fields, scored by the absolute difference between its signed total and the
// goal, and the best K are kept. With N fields that is 3^N - 1 combinations,
// so N is limited to 31.
//
// # Quick Start
//
//	s := calculator.New()
//	res, _ := s.Search(ctx, calculator.Job{
//	    Dataset:  ds,
//	    Goal:     20000,
//	    RankSize: 10,
//	})
//	for _, c := range res.Candidates {
//	    fmt.Print(model.Describe(c))
//	}
//
// # Several Datasets
//
// Run searches datasets concurrently. When more than one dataset is given the
// rankings are combined: candidates are grouped by canonical key (which fields
// are added and which subtracted) and ranked by the mean of the diffs reported
// by the datasets that surfaced them.
//
//	report, _ := s.Run(ctx, q1, q2, q3)
//	for _, c := range report.Combined {
//	    fmt.Print(model.Describe(c))
//	}
//
// # Determinism
//
// Rankings are ordered by diff, with exact ties broken by canonical key, so
// the output is identical for every worker count.
//
// # Concurrency
//
// Within a dataset the selection masks are split across workers that each keep
// a private bounded ranking; the rankings are merged pairwise at the end. Use
// WithResourceController to bound the number of scoring workers across all
// datasets of a run.
package calculator
