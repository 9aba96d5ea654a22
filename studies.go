// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package simul

import "context"

// StudiesClient exports studies as PGN.
type StudiesClient struct {
	r *Requestor
}

// ExportChapter returns one chapter of a study as PGN text.
func (c *StudiesClient) ExportChapter(ctx context.Context, studyID, chapterID string) (string, error) {
	ep := Get("study/" + studyID + "/" + chapterID + ".pgn").WithFormat(FormatPGN)
	return c.r.Text(ctx, ep, Params{})
}

// Export streams all chapters of a study as raw PGN lines.
func (c *StudiesClient) Export(ctx context.Context, studyID string) (*Stream[string], error) {
	ep := Get("study/" + studyID + ".pgn").WithFormat(FormatPGN)
	return c.r.Lines(ctx, ep, Params{})
}
