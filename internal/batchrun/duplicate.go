package batchrun

import "subtuner/internal/textutil"

// duplicateSimilarityThreshold mirrors the teacher's commentary-track
// stereo-downmix check: two subtitle files whose cue text fingerprints are
// this close are almost certainly the same release under two names rather
// than independent content.
const duplicateSimilarityThreshold = 0.92

// DuplicateWarning flags a pair of processed files whose text is
// near-identical, so a batch run over a library with redundant copies of
// the same release doesn't silently optimize (and potentially diverge)
// both.
type DuplicateWarning struct {
	PathA      string
	PathB      string
	Similarity float64
}

// detectDuplicates fingerprints every file's concatenated cue text and
// flags pairs above duplicateSimilarityThreshold, grounded on the teacher's
// internal/audioanalysis/commentary.go fingerprint-then-compare idiom.
func detectDuplicates(files []FileResult, textByPath map[string]string) []DuplicateWarning {
	type fingerprinted struct {
		path string
		fp   *textutil.Fingerprint
	}
	candidates := make([]fingerprinted, 0, len(files))
	for _, f := range files {
		fp := textutil.NewFingerprint(textByPath[f.Path])
		if fp == nil {
			continue
		}
		candidates = append(candidates, fingerprinted{path: f.Path, fp: fp})
	}

	var warnings []DuplicateWarning
	for i := 0; i < len(candidates); i++ {
		for j := i + 1; j < len(candidates); j++ {
			similarity := textutil.CosineSimilarity(candidates[i].fp, candidates[j].fp)
			if similarity >= duplicateSimilarityThreshold {
				warnings = append(warnings, DuplicateWarning{
					PathA:      candidates[i].path,
					PathB:      candidates[j].path,
					Similarity: similarity,
				})
			}
		}
	}
	return warnings
}
