package cds

import (
	"strings"
	"testing"
)

func TestRankDifferentials_CAPSymptoms(t *testing.T) {
	g := DefaultGraph()
	results := RankDifferentials(g, []string{"fever", "cough", "sputum", "dyspnea"}, 70, []string{"diabetes"}, []LabResult{
		{Code: "CBC", Value: 15000, Unit: "cells/uL"},
		{Code: "Procalcitonin", Value: 3.5, Unit: "ng/mL"},
	})

	if len(results) == 0 {
		t.Fatal("expected differentials for classic CAP presentation")
	}
	if results[0].ICDCode != "J18.9" {
		t.Errorf("expected J18.9 ranked first, got %s", results[0].ICDCode)
	}
	if results[0].Rank != 1 {
		t.Errorf("expected rank 1, got %d", results[0].Rank)
	}
	for i := 1; i < len(results); i++ {
		if results[i].Probability > results[i-1].Probability {
			t.Errorf("results not sorted: %f > %f at index %d", results[i].Probability, results[i-1].Probability, i)
		}
		if results[i].Rank != i+1 {
			t.Errorf("expected rank %d, got %d", i+1, results[i].Rank)
		}
	}
}

func TestRankDifferentials_NoOverlapExcluded(t *testing.T) {
	g := DefaultGraph()
	results := RankDifferentials(g, []string{"polyuria", "polydipsia"}, 50, nil, nil)

	for _, r := range results {
		if r.ICDCode == "J18.9" || r.ICDCode == "I50.1" {
			t.Errorf("disease with no symptom overlap should be excluded, got %s", r.ICDCode)
		}
	}
}

func TestRankDifferentials_BilingualNames(t *testing.T) {
	g := DefaultGraph()
	results := RankDifferentials(g, []string{"fever", "cough", "sputum"}, 40, nil, nil)

	if len(results) == 0 {
		t.Fatal("expected differentials")
	}
	if results[0].Description != "Community-Acquired Pneumonia" {
		t.Errorf("unexpected description: %s", results[0].Description)
	}
	if results[0].DescriptionTH != "ปอดอักเสบชุมชน" {
		t.Errorf("unexpected Thai description: %s", results[0].DescriptionTH)
	}
	for _, r := range results {
		if r.DescriptionTH == "" {
			t.Errorf("%s missing Thai description", r.ICDCode)
		}
	}
}

func TestRankDifferentials_NoSymptoms(t *testing.T) {
	g := DefaultGraph()
	if results := RankDifferentials(g, nil, 70, []string{"diabetes"}, nil); len(results) != 0 {
		t.Errorf("expected empty result with no symptoms, got %d", len(results))
	}
}

func TestRankDifferentials_ProbabilityCapped(t *testing.T) {
	g := DefaultGraph()
	// Full match on every axis for J18.9.
	symptoms := []string{"fever", "cough", "dyspnea", "sputum", "chest_pain", "tachypnea"}
	pmh := []string{"diabetes", "copd", "smoking", "immunosuppressed"}
	labs := []LabResult{
		{Code: "CBC"}, {Code: "CXR"}, {Code: "Blood_culture"},
		{Code: "Sputum_culture"}, {Code: "Procalcitonin"}, {Code: "BUN"}, {Code: "Creatinine"},
	}
	results := RankDifferentials(g, symptoms, 80, pmh, labs)

	for _, r := range results {
		if r.Probability > probabilityCap {
			t.Errorf("probability %f exceeds cap for %s", r.Probability, r.ICDCode)
		}
	}
}

func TestRankDifferentials_AgeBonus(t *testing.T) {
	g := DefaultGraph()
	young := RankDifferentials(g, []string{"fever", "cough"}, 40, nil, nil)
	old := RankDifferentials(g, []string{"fever", "cough"}, 70, nil, nil)

	findJ189 := func(rs []DifferentialDiagnosis) *DifferentialDiagnosis {
		for i := range rs {
			if rs[i].ICDCode == "J18.9" {
				return &rs[i]
			}
		}
		return nil
	}
	y, o := findJ189(young), findJ189(old)
	if y == nil || o == nil {
		t.Fatal("expected J18.9 in both result sets")
	}
	if o.Probability <= y.Probability {
		t.Errorf("age >= 65 should raise probability: young=%f old=%f", y.Probability, o.Probability)
	}
}

func TestRankDifferentials_EvidenceMentionsMatches(t *testing.T) {
	g := DefaultGraph()
	results := RankDifferentials(g, []string{"dyspnea", "orthopnea", "edema"}, 70, []string{"hypertension"}, []LabResult{{Code: "BNP", Value: 800}})

	if len(results) == 0 {
		t.Fatal("expected HF differentials")
	}
	top := results[0]
	if top.ICDCode != "I50.9" {
		t.Errorf("expected I50.9 first, got %s", top.ICDCode)
	}
	joined := strings.Join(top.Evidence, "\n")
	for _, want := range []string{"dyspnea", "hypertension", "BNP", "age >= 65"} {
		if !strings.Contains(joined, want) {
			t.Errorf("evidence missing %q: %v", want, top.Evidence)
		}
	}
}

func TestRankDifferentials_AtMostSix(t *testing.T) {
	g := DefaultGraph()
	// fatigue, nausea, confusion and dyspnea together overlap most diseases.
	symptoms := []string{"fatigue", "nausea", "confusion", "dyspnea", "fever", "edema", "polyuria"}
	results := RankDifferentials(g, symptoms, 70, nil, nil)
	if len(results) > maxDifferentials {
		t.Errorf("expected at most %d differentials, got %d", maxDifferentials, len(results))
	}
}

func TestGraph_GroupFor(t *testing.T) {
	g := DefaultGraph()
	if got := g.GroupFor("I50.9", GroupCAP); got != GroupHF {
		t.Errorf("expected HF, got %s", got)
	}
	if got := g.GroupFor("Z99.9", GroupCAP); got != GroupCAP {
		t.Errorf("expected fallback CAP, got %s", got)
	}
}
