package main

import (
	"fmt"
	"io"

	calculator "github.com/samugi/cal-cu-lator"
	"github.com/samugi/cal-cu-lator/codec"
	"github.com/samugi/cal-cu-lator/model"
)

func renderText(w io.Writer, report *calculator.Report) {
	for _, res := range report.Results {
		fmt.Fprintf(w, "\n\nhere is a result for %s (%d candidates scored in %s)\n",
			res.Dataset, res.Stats.Candidates, res.Stats.Duration)
		for _, c := range res.Candidates {
			fmt.Fprint(w, model.Describe(c))
		}
	}
	for _, c := range report.Combined {
		fmt.Fprintf(w, "combined results (seen in %d datasets): %s", c.Seen(), model.Describe(c))
	}
}

type jsonReport struct {
	Results  []jsonResult   `json:"results"`
	Combined []jsonCombined `json:"combined,omitempty"`
}

type jsonResult struct {
	Dataset    string                 `json:"dataset"`
	RunID      string                 `json:"run_id"`
	Goal       float64                `json:"goal"`
	RankSize   int                    `json:"rank_size"`
	Stats      calculator.SearchStats `json:"stats"`
	Candidates []jsonCandidate        `json:"candidates"`
}

type jsonCandidate struct {
	Rank       int     `json:"rank"`
	Sign       uint32  `json:"sign"`
	Select     uint32  `json:"select"`
	SignBits   string  `json:"sign_bits"`
	SelectBits string  `json:"select_bits"`
	Error      float64 `json:"error"`
	Diff       float64 `json:"diff"`
	Formula    string  `json:"formula"`
}

type jsonCombined struct {
	Rank     int       `json:"rank"`
	Sign     uint32    `json:"sign"`
	Select   uint32    `json:"select"`
	Mean     float64   `json:"mean"`
	Diffs    []float64 `json:"diffs"`
	Datasets []uint32  `json:"datasets"`
	Formula  string    `json:"formula"`
}

func toJSON(report *calculator.Report) jsonReport {
	out := jsonReport{Results: make([]jsonResult, 0, len(report.Results))}
	for _, res := range report.Results {
		jr := jsonResult{
			Dataset:    res.Dataset,
			RunID:      res.RunID.String(),
			Goal:       res.Goal,
			RankSize:   res.RankSize,
			Stats:      res.Stats,
			Candidates: make([]jsonCandidate, 0, len(res.Candidates)),
		}
		for i, c := range res.Candidates {
			jr.Candidates = append(jr.Candidates, jsonCandidate{
				Rank:       i + 1,
				Sign:       c.Sign,
				Select:     c.Select,
				SignBits:   model.Bits(c.Sign),
				SelectBits: model.Bits(c.Select),
				Error:      c.Error,
				Diff:       c.Diff,
				Formula:    model.Formula(c),
			})
		}
		out.Results = append(out.Results, jr)
	}
	for i, c := range report.Combined {
		var datasets []uint32
		if c.Datasets != nil {
			datasets = c.Datasets.ToArray()
		}
		out.Combined = append(out.Combined, jsonCombined{
			Rank:     i + 1,
			Sign:     c.Sign,
			Select:   c.Select,
			Mean:     c.Mean(),
			Diffs:    c.Diffs,
			Datasets: datasets,
			Formula:  model.Formula(c),
		})
	}
	return out
}

func renderJSON(w io.Writer, c codec.Codec, report *calculator.Report) error {
	return codec.Encode(w, c, toJSON(report))
}
