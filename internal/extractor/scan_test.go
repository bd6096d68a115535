package extractor_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	extractor "github.com/emilioroldan/iban-phones/internal/extractor"
)

var _ = Describe("ProcessLarge", func() {
	var (
		ext  *extractor.Extractor
		path string
	)

	const fiveLines = "ES91 2100 0418 4502 0005 1332 612345678\n" +
		"sin iban 677000111\n" +
		"ES91 0049 0001 2345 6789 0123 699112233\n" +
		"\n" +
		"ES91 2100 0418 4502 0005 1332 677889900\n"

	BeforeEach(func() {
		ext = extractor.New(fixtureRegistry())
		path = filepath.Join(GinkgoT().TempDir(), "input.txt")
		Expect(os.WriteFile(path, []byte(fiveLines), 0o644)).To(Succeed())
	})

	It("should produce the same results as ProcessText regardless of chunk boundaries", func() {
		whole := ext.ProcessText("ES2100", fiveLines)

		chunked, err := ext.ProcessLarge(context.Background(), "ES2100", path, 2, nil)
		Expect(err).ToNot(HaveOccurred())
		Expect(chunked).To(Equal(whole))

		Expect(chunked).To(HaveLen(2))
		Expect(chunked[0].LineNumber).To(Equal(1))
		Expect(chunked[1].LineNumber).To(Equal(5))
	})

	It("should report progress after each batch", func() {
		type report struct {
			percent   float64
			processed int
			total     int
		}
		var reports []report

		_, err := ext.ProcessLarge(context.Background(), "ES2100", path, 2, func(percent float64, processed, total int) {
			reports = append(reports, report{percent, processed, total})
		})
		Expect(err).ToNot(HaveOccurred())

		Expect(reports).To(HaveLen(3))
		Expect(reports[0].processed).To(Equal(2))
		Expect(reports[0].total).To(Equal(5))
		Expect(reports[0].percent).To(BeNumerically("~", 40.0, 0.01))
		Expect(reports[2].processed).To(Equal(5))
		Expect(reports[2].percent).To(BeNumerically("~", 100.0, 0.01))
	})

	It("should use the default chunk size for non-positive values", func() {
		results, err := ext.ProcessLarge(context.Background(), "ES2100", path, 0, nil)
		Expect(err).ToNot(HaveOccurred())
		Expect(results).To(HaveLen(2))
	})

	Context("when the context is already cancelled", func() {
		It("should stop at the first batch boundary without results", func() {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			results, err := ext.ProcessLarge(ctx, "ES2100", path, 2, nil)
			Expect(err).To(MatchError(context.Canceled))
			Expect(results).To(BeNil())
		})
	})

	Context("when the file does not exist", func() {
		It("should wrap the path in the error", func() {
			_, err := ext.ProcessLarge(context.Background(), "ES2100", "missing.txt", 2, nil)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("missing.txt"))
		})
	})
})

var _ = Describe("EstimateSize", func() {
	var ext *extractor.Extractor

	BeforeEach(func() {
		ext = extractor.New(fixtureRegistry())
	})

	Context("for a file within the sample window", func() {
		It("should report exact line counts and the minimum chunk size", func() {
			path := filepath.Join(GinkgoT().TempDir(), "small.txt")
			content := strings.Repeat("linea\n", 42)
			Expect(os.WriteFile(path, []byte(content), 0o644)).To(Succeed())

			estimate, err := ext.EstimateSize(path)
			Expect(err).ToNot(HaveOccurred())

			Expect(estimate.SizeBytes).To(Equal(int64(len(content))))
			Expect(estimate.EstimatedLines).To(Equal(42))
			Expect(estimate.IsLarge).To(BeFalse())
			Expect(estimate.RecommendedChunkSize).To(Equal(1000))
		})
	})

	Context("for a file beyond the sample window", func() {
		It("should extrapolate the line count from bytes read", func() {
			path := filepath.Join(GinkgoT().TempDir(), "big.txt")
			content := strings.Repeat("una linea igual que todas\n", 12000)
			Expect(os.WriteFile(path, []byte(content), 0o644)).To(Succeed())

			estimate, err := ext.EstimateSize(path)
			Expect(err).ToNot(HaveOccurred())

			Expect(estimate.EstimatedLines).To(BeNumerically("~", 12000, 120))
		})
	})

	Context("when the file does not exist", func() {
		It("should wrap the path in the error", func() {
			_, err := ext.EstimateSize("missing.txt")
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("missing.txt"))
		})
	})
})
