package registry_test

import (
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/omnihash/omnihash/digest"
	. "github.com/omnihash/omnihash/registry"
)

var _ = Describe("Collect", func() {
	Context("with empty criteria", func() {
		It("registers LENGTH first, then the digest algorithms", func() {
			factories := Collect(NewCriteria(nil, nil), Options{})

			names := factories.Names()
			Expect(names[0]).To(Equal("LENGTH"))
			Expect(names).To(ContainElement("SHA256"))
			Expect(names).To(ContainElement("SHA3-256"))
			Expect(names).To(ContainElement("GIT-BLOB"))
			Expect(names).To(ContainElement("GIT-COMMIT"))
			Expect(names).To(ContainElement("GIT-TAG"))
		})

		It("leaves checksums out unless asked for", func() {
			factories := Collect(NewCriteria(nil, nil), Options{})
			Expect(factories.Contains("CRC-32")).To(BeFalse())

			factories = Collect(NewCriteria(nil, nil), Options{IncludeChecksums: true})
			Expect(factories.Contains("CRC-32")).To(BeTrue())
			Expect(factories.Contains("ADLER-32")).To(BeTrue())
		})

		It("registers only upper-case names", func() {
			factories := Collect(NewCriteria(nil, nil), Options{IncludeChecksums: true})
			for _, name := range factories.Names() {
				Expect(name).To(Equal(strings.ToUpper(name)))
			}
		})
	})

	Context("with include criteria", func() {
		It("keeps only matching algorithms", func() {
			factories := Collect(NewCriteria([]string{"GIT"}, nil), Options{})

			Expect(factories.Names()).To(Equal([]string{"GIT-BLOB", "GIT-COMMIT", "GIT-TAG"}))
		})
	})

	Context("with criteria rejecting everything", func() {
		It("yields an empty registry", func() {
			factories := Collect(NewCriteria([]string{"NO-SUCH-ALGO"}, nil), Options{IncludeChecksums: true})

			Expect(factories.Len()).To(Equal(0))
			Expect(factories.Names()).To(BeEmpty())
		})
	})

	Context("git factories", func() {
		It("pick the slurping variant only for unknown sizes", func() {
			factories := Collect(NewCriteria([]string{"GIT-BLOB"}, nil), Options{})

			factory, found := factories.Get("GIT-BLOB")
			Expect(found).To(BeTrue())

			known := factory(digest.KnownSize(5))
			known.Update([]byte("hello"))
			Expect(known.Digest()).To(Equal("b6fc4c620b67d95f953a5c1c1230aaab5db5a1b0"))

			unknown := factory(digest.UnknownSize())
			unknown.Update([]byte("hello"))
			Expect(unknown.Digest()).To(Equal("b6fc4c620b67d95f953a5c1c1230aaab5db5a1b0"))
		})
	})
})
