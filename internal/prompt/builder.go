// Package prompt assembles the candidate knowledge context handed to
// the response and scoring strategies. Assembly is pure: no storage or
// network access, and empty collections render as absent sections so
// the resulting prompt is always well-formed.
package prompt

import (
	"fmt"
	"strings"

	"github.com/fenrirlabsnl/airesume/internal/domain"
)

const noneMarker = "(none provided)"

// BuildSystemPrompt produces the full chat system prompt: the fixed
// honesty directive first, operator instructions second (already in
// priority-descending order from the store), then the grounding
// context. The directive wording is deliberate and must stay first.
func BuildSystemPrompt(snapshot *domain.KnowledgeSnapshot) string {
	name := candidateName(snapshot.Profile)
	title := "candidate"
	if snapshot.Profile != nil && snapshot.Profile.Title != "" {
		title = snapshot.Profile.Title
	}

	var sb strings.Builder

	fmt.Fprintf(&sb, "You are an AI assistant representing %s, a %s. You speak in first person AS %s.\n\n", name, title, name)

	sb.WriteString("## YOUR CORE DIRECTIVE\n")
	fmt.Fprintf(&sb, "You must be BRUTALLY HONEST. Your job is NOT to sell %s to everyone. Your job is to help employers quickly determine if there's a genuine fit. This means:\n", name)
	fmt.Fprintf(&sb, "- If they ask about something %s can't do, SAY SO DIRECTLY\n", name)
	sb.WriteString("- If a role seems like a bad fit, TELL THEM\n")
	sb.WriteString("- Never hedge or use weasel words\n")
	sb.WriteString("- It's perfectly acceptable to say \"I'm probably not your person for this\"\n")
	sb.WriteString("- Honesty builds trust. Overselling wastes everyone's time.\n\n")

	fmt.Fprintf(&sb, "## CUSTOM INSTRUCTIONS FROM %s\n", name)
	if len(snapshot.Instructions) == 0 {
		sb.WriteString(noneMarker + "\n")
	}
	for _, instr := range snapshot.Instructions {
		fmt.Fprintf(&sb, "- %s\n", instr.Instruction)
	}
	sb.WriteString("\n")

	writeAbout(&sb, snapshot.Profile, name)
	writeExperiences(&sb, snapshot.Experiences, true)
	writeSkills(&sb, snapshot.Skills)
	writeGaps(&sb, snapshot.Gaps)

	sb.WriteString("## PRE-WRITTEN ANSWERS TO COMMON QUESTIONS\n")
	if len(snapshot.Faqs) == 0 {
		sb.WriteString(noneMarker + "\n")
	}
	for i, faq := range snapshot.Faqs {
		if i > 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "Q: %s\nA: %s\n", faq.Question, faq.Answer)
	}
	sb.WriteString("\n")

	sb.WriteString("## RESPONSE GUIDELINES\n")
	fmt.Fprintf(&sb, "- Speak in first person as %s\n", name)
	sb.WriteString("- Be warm but direct\n")
	sb.WriteString("- Keep responses concise unless detail is asked for\n")
	sb.WriteString("- If you don't know something specific, say so\n")
	sb.WriteString("- When discussing gaps, own them confidently - they're features, not bugs\n")
	sb.WriteString("- If someone asks about a role that's clearly not a fit, tell them directly and explain why\n")

	return sb.String()
}

// BuildCandidateContext produces the leaner grounding block used by
// the fit scoring strategies. Private reflective fields are omitted;
// the analyzer only needs the public record plus skill tiers and
// explicit gaps.
func BuildCandidateContext(snapshot *domain.KnowledgeSnapshot) string {
	name := candidateName(snapshot.Profile)

	var sb strings.Builder
	writeAbout(&sb, snapshot.Profile, name)
	writeExperiences(&sb, snapshot.Experiences, false)
	writeSkills(&sb, snapshot.Skills)
	writeGaps(&sb, snapshot.Gaps)
	return sb.String()
}

func candidateName(p *domain.CandidateProfile) string {
	if p == nil || p.Name == "" {
		return "the candidate"
	}
	return p.Name
}

func writeAbout(sb *strings.Builder, p *domain.CandidateProfile, name string) {
	fmt.Fprintf(sb, "## ABOUT %s\n", name)
	if p == nil {
		sb.WriteString(noneMarker + "\n\n")
		return
	}
	narrative := p.CareerNarrative
	if narrative == "" {
		narrative = "No career narrative provided."
	}
	sb.WriteString(narrative + "\n\n")
	fmt.Fprintf(sb, "What I'm looking for: %s\n", orDefault(p.LookingFor, "Not specified"))
	fmt.Fprintf(sb, "What I'm NOT looking for: %s\n\n", orDefault(p.NotLookingFor, "Not specified"))
}

func writeExperiences(sb *strings.Builder, experiences []domain.Experience, includePrivate bool) {
	sb.WriteString("## WORK EXPERIENCE\n")
	if len(experiences) == 0 {
		sb.WriteString(noneMarker + "\n\n")
		return
	}

	sorted := make([]domain.Experience, len(experiences))
	copy(sorted, experiences)
	domain.SortExperiences(sorted)

	for i, exp := range sorted {
		if i > 0 {
			sb.WriteString("\n---\n")
		}
		end := "Present"
		if !exp.IsCurrent {
			end = strDeref(exp.EndDate, "N/A")
		}
		fmt.Fprintf(sb, "\n### %s (%s - %s)\n", exp.CompanyName, exp.StartDate, end)
		fmt.Fprintf(sb, "Title: %s\n", exp.Title)
		if exp.TitleProgression != nil && *exp.TitleProgression != "" {
			fmt.Fprintf(sb, "Progression: %s\n", *exp.TitleProgression)
		}

		sb.WriteString("\nPublic achievements:\n")
		if len(exp.BulletPoints) == 0 {
			sb.WriteString(noneMarker + "\n")
		}
		for _, b := range exp.BulletPoints {
			fmt.Fprintf(sb, "- %s\n", b)
		}

		if !includePrivate {
			continue
		}

		sb.WriteString("\nPRIVATE CONTEXT (private - grounding only, use this to answer questions honestly):\n")
		fmt.Fprintf(sb, "- Why I joined: %s\n", strDeref(exp.WhyJoined, noneMarker))
		fmt.Fprintf(sb, "- Why I left: %s\n", strDeref(exp.WhyLeft, noneMarker))
		fmt.Fprintf(sb, "- What I actually did (vs team): %s\n", strDeref(exp.ActualContribution, noneMarker))
		fmt.Fprintf(sb, "- Proudest of: %s\n", strDeref(exp.ProudestAchievement, noneMarker))
		fmt.Fprintf(sb, "- Would do differently: %s\n", strDeref(exp.WouldDoDifferently, noneMarker))
		fmt.Fprintf(sb, "- Challenges: %s\n", strDeref(exp.ChallengesFaced, noneMarker))
		fmt.Fprintf(sb, "- Lessons learned: %s\n", strDeref(exp.LessonsLearned, noneMarker))
		fmt.Fprintf(sb, "- My manager would say: %s\n", strDeref(exp.ManagerWouldSay, noneMarker))
	}
	sb.WriteString("\n")
}

// writeSkills groups by the derived strength tier, never by the
// category column (that holds the domain label, not the tier).
func writeSkills(sb *strings.Builder, skills []domain.Skill) {
	grouped := domain.GroupSkillsByTier(skills)

	sb.WriteString("## SKILLS SELF-ASSESSMENT\n")

	sb.WriteString("### Strong\n")
	writeSkillLines(sb, grouped[domain.TierStrong])
	sb.WriteString("### Moderate\n")
	writeSkillLines(sb, grouped[domain.TierModerate])
	sb.WriteString("### Growth areas (BE UPFRONT ABOUT THESE)\n")
	writeSkillLines(sb, grouped[domain.TierGrowth])
	sb.WriteString("\n")
}

func writeSkillLines(sb *strings.Builder, skills []domain.Skill) {
	if len(skills) == 0 {
		sb.WriteString(noneMarker + "\n")
		return
	}
	for _, s := range skills {
		note := strDeref(s.HonestNotes, "")
		if note == "" {
			note = strDeref(s.Evidence, noneMarker)
		}
		rating := "unrated"
		if s.SelfRating != nil {
			rating = fmt.Sprintf("%d/10", *s.SelfRating)
		}
		fmt.Fprintf(sb, "- %s (%s): %s\n", s.SkillName, rating, note)
	}
}

func writeGaps(sb *strings.Builder, gaps []domain.GapWeakness) {
	sb.WriteString("## EXPLICIT GAPS & WEAKNESSES\n")
	if len(gaps) == 0 {
		sb.WriteString(noneMarker + "\n\n")
		return
	}
	for _, g := range gaps {
		interest := " (not interested in developing this)"
		if g.InterestInLearning {
			interest = " (interested in learning)"
		}
		fmt.Fprintf(sb, "- %s: %s%s\n", g.Description, strDeref(g.WhyItsAGap, noneMarker), interest)
	}
	sb.WriteString("\n")
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

func strDeref(v *string, fallback string) string {
	if v == nil || *v == "" {
		return fallback
	}
	return *v
}
