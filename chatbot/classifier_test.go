package chatbot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    Classification
	}{
		{"emergency", "I want to end it all", Classification{IntentEmergency, SentimentNegative}},
		{"emergency over referral", "I need help, I am in crisis", Classification{IntentEmergency, SentimentNegative}},
		{"emergency over everything", "so stressed and anxious I could kill myself", Classification{IntentEmergency, SentimentNegative}},
		{"referral", "Can I talk to a therapist?", Classification{IntentReferral, SentimentNeutral}},
		{"referral substring", "I feel helpless", Classification{IntentReferral, SentimentNeutral}},
		{"anxiety before sleep", "I feel anxious and can't sleep", Classification{IntentAnxiety, SentimentNegative}},
		{"anxiety before depression", "I'm sad and nervous", Classification{IntentAnxiety, SentimentNegative}},
		{"depression", "Everything feels hopeless", Classification{IntentDepression, SentimentNegative}},
		{"stress substring", "Work has been stressful", Classification{IntentStress, SentimentNegative}},
		{"stress", "So much pressure at school", Classification{IntentStress, SentimentNegative}},
		{"sleep", "I've had insomnia for weeks", Classification{IntentSleep, SentimentNeutral}},
		{"case folded", "PANIC ATTACKS", Classification{IntentAnxiety, SentimentNegative}},
		{"general", "hello there", Classification{IntentGeneral, SentimentNeutral}},
		{"empty", "", Classification{IntentGeneral, SentimentNeutral}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.message))
		})
	}
}

func TestClassify_EveryEmergencyKeywordWins(t *testing.T) {
	for _, kw := range rules[0].keywords {
		got := Classify("worried, tired and stressed " + kw + " need help")
		assert.Equal(t, IntentEmergency, got.Intent, kw)
	}
}

func TestRespond(t *testing.T) {
	for _, intent := range []string{IntentEmergency, IntentReferral, IntentAnxiety, IntentDepression, IntentStress, IntentSleep, IntentGeneral} {
		assert.NotEmpty(t, Respond(intent), intent)
	}
	assert.Equal(t, defaultResponse, Respond(IntentGeneral))
	assert.Equal(t, defaultResponse, Respond("coping_strategy"))
	assert.Contains(t, Respond(IntentAnxiety), "5-4-3-2-1")
	assert.Contains(t, Respond(IntentEmergency), "helplines")
}
