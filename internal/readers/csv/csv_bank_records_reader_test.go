package csv_test

import (
	"strings"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	csvreader "github.com/emilioroldan/iban-phones/internal/readers/csv"
)

func TestCSVReader(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "CSV Bank Records Reader Suite")
}

var _ = Describe("CSVBankRecordsReader", func() {
	var reader *csvreader.CSVBankRecordsReader

	BeforeEach(func() {
		reader = &csvreader.CSVBankRecordsReader{}
	})

	Context("when reading a well-formed register", func() {
		It("should return one record per row with trimmed fields", func() {
			source := "CÓDIGO EUROPEO,NOMBRE,DIRECCIÓN,LEI,OPERADOR,PROVEEDOR,CÓDIGO DE SUPERVISOR\n" +
				"ES0049, BANCO SANTANDER ,PASEO DE PEREDA 9,LEI49,OP,PROV,0049\n" +
				"ES2100,CAIXABANK,PINTOR SOROLLA 2,,,,\n"

			records, err := reader.ReadBankRecords(strings.NewReader(source))
			Expect(err).ToNot(HaveOccurred())
			Expect(records).To(HaveLen(2))

			Expect(records[0].Index).To(Equal(1))
			Expect(records[0].EuropeanCode).To(Equal("ES0049"))
			Expect(records[0].Name).To(Equal("BANCO SANTANDER"))
			Expect(records[0].LEI).To(Equal("LEI49"))

			Expect(records[1].Index).To(Equal(2))
			Expect(records[1].LEI).To(BeEmpty())
		})
	})

	Context("when the header carries a byte order mark", func() {
		It("should still recognize the first column", func() {
			source := "\uFEFFCÓDIGO EUROPEO,NOMBRE,DIRECCIÓN\nES0081,BANCO DE SABADELL,PLAZA SANT ROC\n"

			records, err := reader.ReadBankRecords(strings.NewReader(source))
			Expect(err).ToNot(HaveOccurred())
			Expect(records).To(HaveLen(1))
			Expect(records[0].EuropeanCode).To(Equal("ES0081"))
		})
	})

	Context("when optional columns are absent", func() {
		It("should leave the optional fields empty", func() {
			source := "CÓDIGO EUROPEO,NOMBRE,DIRECCIÓN\nES0128,BANKINTER,PASEO DE LA CASTELLANA 29\n"

			records, err := reader.ReadBankRecords(strings.NewReader(source))
			Expect(err).ToNot(HaveOccurred())
			Expect(records[0].Operator).To(BeEmpty())
			Expect(records[0].SupervisorCode).To(BeEmpty())
		})
	})

	Context("when a required column is missing", func() {
		It("should fail naming the column", func() {
			source := "CÓDIGO EUROPEO,NOMBRE\nES0049,BANCO SANTANDER\n"

			_, err := reader.ReadBankRecords(strings.NewReader(source))
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("DIRECCIÓN"))
		})
	})

	Context("when the source is empty", func() {
		It("should fail on the missing header", func() {
			_, err := reader.ReadBankRecords(strings.NewReader(""))
			Expect(err).To(HaveOccurred())
		})
	})

	Context("when header casing differs", func() {
		It("should match columns case-insensitively", func() {
			source := "código europeo,nombre,dirección\nES0061,BANCA MARCH,AVENIDA ALEJANDRO ROSSELLÓ 8\n"

			records, err := reader.ReadBankRecords(strings.NewReader(source))
			Expect(err).ToNot(HaveOccurred())
			Expect(records[0].EuropeanCode).To(Equal("ES0061"))
			Expect(records[0].Name).To(Equal("BANCA MARCH"))
		})
	})
})
