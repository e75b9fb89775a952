package hands_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestHands(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Hands Suite")
}
