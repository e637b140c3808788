package cds

import (
	"fmt"
	"math"
	"sort"
)

const (
	riskFactorBonus  = 0.3
	labEvidenceBonus = 0.2
	probabilityCap   = 0.95
	maxDifferentials = 6
)

// RankDifferentials scores every graph disease against the presented
// symptoms and returns up to maxDifferentials candidates, highest
// probability first. Diseases with no symptom overlap are excluded
// outright; ties keep the graph's declaration order.
func RankDifferentials(g *Graph, symptoms []string, age int, pmh []string, labs []LabResult) []DifferentialDiagnosis {
	symptomSet := toSet(symptoms)
	pmhSet := toSet(pmh)
	labCodes := make(map[string]bool, len(labs))
	for _, l := range labs {
		labCodes[l.Code] = true
	}

	// Non-nil so an empty result marshals as [] rather than null.
	candidates := []DifferentialDiagnosis{}
	for _, d := range g.Diseases {
		score := 0.0
		var evidence []string

		weights := g.SymptomWeights[d.Group]
		matched := 0
		for _, s := range d.Symptoms {
			if !symptomSet[s] {
				continue
			}
			matched++
			w, ok := weights[s]
			if !ok {
				w = DefaultSymptomWeight
			}
			score += w
			evidence = append(evidence, fmt.Sprintf("symptom: %s (weight %g)", s, w))
		}
		if matched == 0 {
			continue
		}

		for _, rf := range d.RiskFactors {
			if pmhSet[rf] {
				score += riskFactorBonus
				evidence = append(evidence, fmt.Sprintf("risk factor: %s", rf))
			}
		}
		if age >= 65 && contains(d.RiskFactors, "age_over_65") {
			score += riskFactorBonus
			evidence = append(evidence, "age >= 65")
		}

		for _, lab := range d.Labs {
			if labCodes[lab] {
				score += labEvidenceBonus
				evidence = append(evidence, fmt.Sprintf("lab result: %s", lab))
			}
		}

		// Normalize against the disease's best achievable score.
		maxPossible := float64(len(d.Symptoms))*0.9 +
			float64(len(d.RiskFactors))*riskFactorBonus +
			float64(len(d.Labs))*labEvidenceBonus
		probability := math.Min(score/math.Max(maxPossible, 1), probabilityCap)

		candidates = append(candidates, DifferentialDiagnosis{
			ICDCode:       d.ICDCode,
			Description:   d.Name,
			DescriptionTH: d.NameTH,
			Probability:   round3(probability),
			Reasoning:     fmt.Sprintf("%d matching findings consistent with %s", len(evidence), d.Name),
			Evidence:      evidence,
			CPGReference:  fmt.Sprintf("Thai CPG %s 2023", d.Group),
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Probability > candidates[j].Probability
	})
	if len(candidates) > maxDifferentials {
		candidates = candidates[:maxDifferentials]
	}
	for i := range candidates {
		candidates[i].Rank = i + 1
	}
	return candidates
}

func toSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, s := range items {
		set[s] = true
	}
	return set
}

func contains(items []string, target string) bool {
	for _, s := range items {
		if s == target {
			return true
		}
	}
	return false
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
