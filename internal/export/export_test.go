package export_test

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/xuri/excelize/v2"

	export "github.com/emilioroldan/iban-phones/internal/export"
	models "github.com/emilioroldan/iban-phones/internal/models"
)

func TestExport(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Export Suite")
}

var results = []models.MatchLine{
	{
		LineNumber:   1,
		Text:         "ES91 2100 0418 4502 0005 1332 612345678",
		PhoneNumbers: []string{"612345678"},
		PhoneCount:   1,
	},
	{
		LineNumber:   5,
		Text:         "ES91 2100 0418 4502 0005 1332 677889900 y 698765432",
		PhoneNumbers: []string{"677889900", "698765432"},
		PhoneCount:   2,
	},
}

var _ = Describe("WriteText", func() {
	It("should write every phone number on its own line", func() {
		path := filepath.Join(GinkgoT().TempDir(), "out.txt")
		Expect(export.WriteText(path, results)).To(Succeed())

		data, err := os.ReadFile(path)
		Expect(err).ToNot(HaveOccurred())
		Expect(string(data)).To(Equal("612345678\n677889900\n698765432\n"))
	})
})

var _ = Describe("WriteCSV", func() {
	It("should write header plus one row per matched line", func() {
		path := filepath.Join(GinkgoT().TempDir(), "out.csv")
		Expect(export.WriteCSV(path, results)).To(Succeed())

		file, err := os.Open(path)
		Expect(err).ToNot(HaveOccurred())
		defer file.Close()

		rows, err := csv.NewReader(file).ReadAll()
		Expect(err).ToNot(HaveOccurred())
		Expect(rows).To(HaveLen(3))
		Expect(rows[0]).To(Equal([]string{"line_number", "text", "phone_numbers"}))
		Expect(rows[1][0]).To(Equal("1"))
		Expect(rows[2][2]).To(Equal("677889900, 698765432"))
	})
})

var _ = Describe("WriteXLSX", func() {
	It("should write a workbook with header and data rows", func() {
		path := filepath.Join(GinkgoT().TempDir(), "out.xlsx")
		Expect(export.WriteXLSX(path, results)).To(Succeed())

		f, err := excelize.OpenFile(path)
		Expect(err).ToNot(HaveOccurred())
		defer f.Close()

		rows, err := f.GetRows("Extracted Phone Numbers")
		Expect(err).ToNot(HaveOccurred())
		Expect(rows).To(HaveLen(3))
		Expect(rows[0]).To(Equal([]string{"Line Number", "Original Text", "Phone Numbers"}))
		Expect(rows[1][0]).To(Equal("1"))
		Expect(rows[2][2]).To(Equal("677889900, 698765432"))
	})
})

var _ = Describe("Write", func() {
	It("should pick the format from the extension", func() {
		dir := GinkgoT().TempDir()

		txt := filepath.Join(dir, "out.txt")
		Expect(export.Write(txt, results)).To(Succeed())
		data, err := os.ReadFile(txt)
		Expect(err).ToNot(HaveOccurred())
		Expect(string(data)).To(ContainSubstring("612345678\n"))

		xlsx := filepath.Join(dir, "out.xlsx")
		Expect(export.Write(xlsx, results)).To(Succeed())
		f, err := excelize.OpenFile(xlsx)
		Expect(err).ToNot(HaveOccurred())
		Expect(f.Close()).To(Succeed())
	})
})
