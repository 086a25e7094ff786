// Package responder implements the chat response strategies: remote
// via the language model, local canned replies for demo deployments
// with no model credentials.
package responder

import (
	"context"
	"strings"

	"github.com/fenrirlabsnl/airesume/internal/domain"
)

// cannedReplies are keyword-routed demonstration answers. They mirror
// the tone of the real assistant: honest about gaps, direct about
// compensation and fit.
var cannedReplies = map[string]string{
	"weakness": "Good question. I'm honest about my gaps:\n\n" +
		"• **Technical depth** - I can discuss architecture and read code, but I'm a PM, not an engineer. If you need someone who can implement, that's not me.\n\n" +
		"• **Public speaking** - Confident in meetings and small groups, but large conferences still make me nervous. Working on it.\n\n" +
		"• **Enterprise/B2B** - My background is consumer and SMB. Long sales cycles and procurement processes would be new territory.\n\n" +
		"I'd rather you know this upfront than discover it later.",
	"salary": "I'm targeting $200k-$260k base, depending on total comp, equity, and scope of the role. " +
		"For Director-level opportunities, I'm flexible. But if you're significantly below this range, let's save each other time.",
	"experience": "I have about 7 years of product management experience:\n\n" +
		"• Currently at Fintech Co (3 years) as Senior PM, owning consumer payments vertical - 3M+ MAU, $50M ARR.\n\n" +
		"• Before that, first PM at a Series A startup where I built the product practice from scratch and helped find product-market fit.\n\n" +
		"I'm strongest in consumer products, user research, and data-driven decision making. I partner closely with engineering but don't pretend to be technical.",
	"fit": "Honestly? It depends. Here's where I'd be a strong fit:\n\n" +
		"• **Consumer products** with clear metrics and user feedback loops\n" +
		"• **Teams that value data** over opinions (including mine)\n" +
		"• **Companies with strong engineering culture** who want a PM partner, not a ticket-taker\n\n" +
		"Where I'd struggle:\n\n" +
		"• Heavy enterprise/B2B (not my background)\n" +
		"• Roles that are really project management in disguise\n" +
		"• Organizations that ship by committee\n\n" +
		"What's the role you're considering?",
	"default": "Good question. I try to be transparent about my background - including both strengths and gaps. " +
		"Is there something specific about my PM experience you'd like to explore?",
}

// routing is checked in order; the first rule with any keyword present
// in the user's last turn wins.
var routing = []struct {
	key      string
	keywords []string
}{
	{"weakness", []string{"weakness", "gap", "struggle", "not good"}},
	{"salary", []string{"salary", "compensation", "pay", "money"}},
	{"experience", []string{"experience", "background", "worked"}},
	{"fit", []string{"fit", "right", "good for", "team"}},
}

// LocalResponder serves canned replies. It never fails and ignores the
// system prompt; it exists so the chat flow is demonstrable without a
// configured model.
type LocalResponder struct{}

func NewLocalResponder() *LocalResponder {
	return &LocalResponder{}
}

func (r *LocalResponder) Respond(_ context.Context, _ string, turns []domain.ChatTurn) (string, error) {
	if len(turns) == 0 {
		return cannedReplies["default"], nil
	}
	lower := strings.ToLower(turns[len(turns)-1].Content)
	for _, route := range routing {
		for _, kw := range route.keywords {
			if strings.Contains(lower, kw) {
				return cannedReplies[route.key], nil
			}
		}
	}
	return cannedReplies["default"], nil
}
