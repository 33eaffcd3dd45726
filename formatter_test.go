package wordseek_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/wordseek"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleEntry() *wordseek.Entry {
	return &wordseek.Entry{
		Word:     "bank",
		Language: "English",
		Source:   wordseek.Source,
		Link:     "https://en.wiktionary.org/wiki/bank#English",
		Etymologies: []wordseek.EtymologyBlock{
			{
				Index: 0,
				Etymology: wordseek.Etymology{
					Kind:    wordseek.EtymologyHeading,
					Heading: "Etymology 1",
					Plain:   []string{"From Italian banca."},
					Linked:  []string{"From Italian [banca](https://en.wiktionary.org/wiki/banca)."},
				},
				Pronunciations: []wordseek.PronunciationEntry{
					{IPAs: []string{"/bæŋk/"}},
					{Qualifier: "US"},
				},
				PartsOfSpeech: []wordseek.PartOfSpeechBlock{
					{Label: "Noun", Definitions: []string{"A financial institution."}},
					{Label: "Verb", Definitions: []string{"To deposit money."}},
				},
			},
			{
				Index: 1,
				Etymology: wordseek.Etymology{
					Kind:    wordseek.EtymologyHeading,
					Heading: "Etymology 2",
					Plain:   []string{"From Old Norse bakki."},
				},
			},
		},
	}
}

func TestCards(t *testing.T) {
	t.Parallel()

	t.Run("flattens etymologies and parts of speech in order", func(t *testing.T) {
		t.Parallel()

		cards := wordseek.Cards(sampleEntry())

		require.Len(t, cards, 3)
		require.NotNil(t, cards[0].PartOfSpeech)
		assert.Equal(t, "Noun", cards[0].PartOfSpeech.Label)
		assert.Equal(t, "Verb", cards[1].PartOfSpeech.Label)
		assert.Nil(t, cards[2].PartOfSpeech)
		for i, c := range cards {
			assert.Equal(t, i+1, c.Position)
			assert.Equal(t, 3, c.Total)
		}
	})

	t.Run("returns no cards for an entry without blocks", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, wordseek.Cards(&wordseek.Entry{Word: "x"}))
	})
}

func TestFormatCard(t *testing.T) {
	t.Parallel()

	t.Run("renders all fields and the footer", func(t *testing.T) {
		t.Parallel()

		cards := wordseek.Cards(sampleEntry())

		got := wordseek.FormatCard(cards[0])

		want := "bank <https://en.wiktionary.org/wiki/bank#English>\n\n" +
			"Noun\n1. A financial institution.\n\n" +
			"Etymology\nFrom Italian [banca](https://en.wiktionary.org/wiki/banca).\n\n" +
			"Pronunciations\nGeneral: /bæŋk/\n\n" +
			"Source: Wiktionary\n1/3"
		assert.Equal(t, want, got)
	})

	t.Run("renders placeholders for missing data", func(t *testing.T) {
		t.Parallel()

		cards := wordseek.Cards(sampleEntry())

		got := wordseek.FormatCard(cards[2])

		assert.Contains(t, got, "Part of speech not available.")
		assert.Contains(t, got, "Etymology\nNot available.")
		assert.Contains(t, got, "Pronunciations\nNot available.")
		assert.True(t, strings.HasSuffix(got, "3/3"))
	})

	t.Run("caps long fields", func(t *testing.T) {
		t.Parallel()

		long := strings.Repeat("é", 2000)
		card := wordseek.Card{
			Word:      "x",
			Etymology: wordseek.Etymology{Kind: wordseek.EtymologyHeading, Linked: []string{long}},
			Position:  1,
			Total:     1,
		}

		got := wordseek.FormatCard(card)

		assert.Contains(t, got, strings.Repeat("é", wordseek.FieldLimit)+"\n\n")
		assert.NotContains(t, got, strings.Repeat("é", wordseek.FieldLimit+1))
	})
}

func TestFormatEntry(t *testing.T) {
	t.Parallel()

	got := wordseek.FormatEntry(sampleEntry())

	assert.Equal(t, 3, strings.Count(got, "Source: Wiktionary"))
	assert.Contains(t, got, "1/3")
	assert.Contains(t, got, "3/3")
}

func TestFormatLegacy(t *testing.T) {
	t.Parallel()

	t.Run("numbers multiple etymologies", func(t *testing.T) {
		t.Parallel()

		got := wordseek.FormatLegacy(sampleEntry())

		want := "Etymology 1\nFrom Italian banca.\n\n" +
			"Etymology 2\nFrom Old Norse bakki.\n\n" +
			"Source: https://en.wiktionary.org/wiki/bank"
		assert.Equal(t, want, got)
	})

	t.Run("omits the header for a single etymology", func(t *testing.T) {
		t.Parallel()

		e := sampleEntry()
		e.Etymologies = e.Etymologies[1:]

		got := wordseek.FormatLegacy(e)

		assert.Equal(t, "From Old Norse bakki.\n\nSource: https://en.wiktionary.org/wiki/bank", got)
	})

	t.Run("caps the message length", func(t *testing.T) {
		t.Parallel()

		e := sampleEntry()
		e.Etymologies[1].Etymology.Plain = []string{strings.Repeat("a", 3000)}

		got := wordseek.FormatLegacy(e)

		assert.Len(t, []rune(got), wordseek.MessageLimit)
	})
}
