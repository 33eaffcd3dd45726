package batch

import (
	"bufio"
	"io"
	"strings"

	"github.com/fwojciec/wordseek/bloom"
)

// DefaultFalsePositiveRate is the rate at which the filter in front of the
// queue's exact key set reports a new word as possibly seen.
const DefaultFalsePositiveRate = 0.0001

// Queue collects the words of a batch in input order, dropping repeats.
// Words the Bloom filter has never seen skip the key set lookup; possible
// repeats are confirmed against it, so no distinct word is dropped.
// It is not safe for concurrent use.
type Queue struct {
	seen  *bloom.Filter
	keys  map[string]struct{}
	words []string
}

// NewQueue creates a Queue sized for n expected words.
func NewQueue(n uint, fpRate float64) *Queue {
	return &Queue{
		seen: bloom.NewFilter(n, fpRate),
		keys: make(map[string]struct{}, n),
	}
}

// Push adds word to the queue. It returns false if the word was already
// pushed for language or is blank.
func (q *Queue) Push(word, language string) bool {
	word = strings.TrimSpace(word)
	if word == "" {
		return false
	}
	key := bloom.Key(word, language)
	if q.seen.TestAndAdd(word, language) {
		if _, ok := q.keys[key]; ok {
			return false
		}
	}
	q.keys[key] = struct{}{}
	q.words = append(q.words, word)
	return true
}

// Words returns the queued words in the order they were first pushed.
func (q *Queue) Words() []string {
	return q.words
}

// Len returns the number of queued words.
func (q *Queue) Len() int {
	return len(q.words)
}

// ReadWords reads one word per line from r. Blank lines and lines starting
// with # are skipped.
func ReadWords(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	return words, scanner.Err()
}
