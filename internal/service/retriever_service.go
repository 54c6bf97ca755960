package service

import (
	"crypto/md5"
	"crypto/sha256"
	"math"
	"sort"
	"strings"

	"promptly/internal/models"
	"promptly/pkg/config"

	"go.uber.org/zap"
)

// ScoredDocument pairs a corpus document's content with its cosine
// similarity against a query.
type ScoredDocument struct {
	Content string  `json:"content"`
	Score   float64 `json:"score"`
}

// RetrieverService finds the corpus documents most similar to a query
// using a deterministic hash-based embedding, so results are reproducible
// and fully offline. The corpus and its embeddings are computed once in the
// constructor and are read-only afterwards; concurrent retrieval needs no
// locking.
type RetrieverService struct {
	dim        int
	docs       []models.Document
	embeddings [][]float64
	logger     *zap.Logger
}

func NewRetrieverService(cfg *config.RetrieverConfig, logger *zap.Logger) *RetrieverService {
	s := &RetrieverService{
		dim:    cfg.EmbeddingDim,
		docs:   models.Corpus(),
		logger: logger,
	}
	s.embeddings = make([][]float64, len(s.docs))
	for i, doc := range s.docs {
		s.embeddings[i] = s.Embed(doc.Content)
	}
	logger.Info("Document corpus embedded",
		zap.Int("documents", len(s.docs)),
		zap.Int("dimension", s.dim),
	)
	return s
}

// Embed produces a deterministic fixed-dimension embedding for text.
// The vector is the elementwise average of a digest-derived vector and a
// word-feature vector, normalized to unit L2 norm. Same text always yields
// the same vector.
func (s *RetrieverService) Embed(text string) []float64 {
	textLower := strings.ToLower(text)

	// Digest-derived vector: SHA-256 bytes scaled to [0,1], extended with
	// repeated MD5 digest bytes until the target dimension is reached.
	digest := sha256.Sum256([]byte(textLower))
	values := make([]float64, 0, s.dim)
	for _, b := range digest {
		values = append(values, float64(b)/255.0)
	}
	if len(values) < s.dim {
		extension := md5.Sum([]byte(textLower))
		for len(values) < s.dim {
			for _, b := range extension {
				values = append(values, float64(b)/255.0)
				if len(values) >= s.dim {
					break
				}
			}
		}
	}
	values = values[:s.dim]

	// Word-feature vector: the first digest byte of each word accumulates
	// into its slot (additive, not overwritten).
	wordFeatures := make([]float64, s.dim)
	for i, word := range strings.Fields(textLower) {
		if i >= s.dim {
			break
		}
		wordDigest := md5.Sum([]byte(word))
		wordFeatures[i%s.dim] += float64(wordDigest[0]) / 255.0
	}

	combined := make([]float64, s.dim)
	var norm float64
	for i := range combined {
		combined[i] = (values[i] + wordFeatures[i]) / 2
		norm += combined[i] * combined[i]
	}
	norm = math.Sqrt(norm)
	if norm > 0 {
		for i := range combined {
			combined[i] /= norm
		}
	}
	return combined
}

// RetrieveWithScores returns the topK most similar documents with their
// similarity scores, ordered by descending similarity. Ties keep corpus
// order. A topK beyond the corpus size returns the whole corpus.
func (s *RetrieverService) RetrieveWithScores(query string, topK int) []ScoredDocument {
	queryEmbedding := s.Embed(query)

	scored := make([]ScoredDocument, len(s.docs))
	for i, doc := range s.docs {
		scored[i] = ScoredDocument{
			Content: doc.Content,
			Score:   cosineSimilarity(queryEmbedding, s.embeddings[i]),
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if topK < 0 {
		topK = 0
	}
	if topK > len(scored) {
		topK = len(scored)
	}
	return scored[:topK]
}

// Retrieve returns the contents of the topK most similar documents.
func (s *RetrieverService) Retrieve(query string, topK int) []string {
	scored := s.RetrieveWithScores(query, topK)
	contents := make([]string, len(scored))
	for i, doc := range scored {
		contents[i] = doc.Content
	}
	return contents
}

// cosineSimilarity returns 0 for zero-magnitude vectors instead of
// dividing by zero.
func cosineSimilarity(a, b []float64) float64 {
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
