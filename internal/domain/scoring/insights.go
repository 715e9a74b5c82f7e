package scoring

// Insight thresholds. Rules run in a fixed order per dimension; the
// output lists are neither deduplicated nor capped.
const (
	skillsStrengthMin       = 80
	skillsConcernBelow      = 50
	industryConcernBelow    = 50
	compensationStrengthMin = 85
	compensationConcernBelow = 50
	sizeConcernBelow        = 70
	locationConcernMax      = 30
	experienceStrengthMin   = 85
	experienceConcernBelow  = 55
	availabilityConcernMax  = 40
)

func Strengths(t TeamSnapshot, b Breakdown) []string {
	out := make([]string, 0, 8)
	if b.Skills >= skillsStrengthMin {
		out = append(out, "Exceptional skills alignment")
	}
	if b.Industry == 100 {
		out = append(out, "Direct experience in the target industry")
	}
	if b.Compensation >= compensationStrengthMin {
		out = append(out, "Compensation expectations align well")
	}
	if b.Size == 100 {
		out = append(out, "Team size fits the opportunity")
	}
	if b.Location == 100 {
		out = append(out, "Location is an exact fit")
	}
	if b.Experience >= experienceStrengthMin {
		out = append(out, "Proven history of working together")
	}
	if b.Availability == 100 {
		out = append(out, "Team is available to move immediately")
	}
	if t.VerificationStatus == "verified" {
		out = append(out, "Verified team profile")
	}
	return out
}

func Concerns(t TeamSnapshot, b Breakdown) []string {
	out := make([]string, 0, 8)
	if b.Skills < skillsConcernBelow {
		out = append(out, "Skills gap may require training")
	}
	if b.Industry < industryConcernBelow {
		out = append(out, "Limited overlap with the target industry")
	}
	if b.Compensation < compensationConcernBelow {
		out = append(out, "Compensation expectations exceed the offered range")
	}
	if b.Size < sizeConcernBelow {
		out = append(out, "Team size falls outside the requested range")
	}
	if b.Location <= locationConcernMax {
		out = append(out, "Remote team applying to an onsite opportunity")
	}
	if b.Experience < experienceConcernBelow {
		out = append(out, "Team has limited shared working history")
	}
	if b.Availability <= availabilityConcernMax {
		out = append(out, "Team availability is limited")
	}
	if t.VerificationStatus == "pending" {
		out = append(out, "Team verification is still pending")
	}
	return out
}
