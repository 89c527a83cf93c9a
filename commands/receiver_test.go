package commands

import (
	"context"
	"testing"

	"github.com/mado-framework/go-mado/framework/mado"
	test "github.com/mado-framework/go-mado/framework/test_helper"
)

type notebook struct {
	pages map[string]string
}

type pageArgs struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

func (n *notebook) WritePage(args pageArgs) string {
	n.pages[args.Title] = args.Body
	return args.Title
}

func (n *notebook) PageCount() int {
	return len(n.pages)
}

type badReceiver struct{}

func (b *badReceiver) Fine()        {}
func (b *badReceiver) Broken(n int) {}

func Test_RegisterReceiver_RegistersEveryExportedMethod(t *testing.T) {
	n := &notebook{pages: map[string]string{}}
	if err := RegisterReceiver("", n); err != nil {
		t.Fatal(err)
	}

	cmd, err := Resolve("notebook/write_page")
	test.H(t).IsNil(err)
	if err := cmd.(mado.CommandWithArgs).SetArgs(&pageArgs{Title: "day one", Body: "rain"}); err != nil {
		t.Fatal(err)
	}
	res, err := cmd.Apply(context.Background())
	test.H(t).IsNil(err)
	test.H(t).InterfaceEql(res, "day one")

	cmd, err = Resolve("notebook/page_count")
	test.H(t).IsNil(err)
	res, err = cmd.Apply(context.Background())
	test.H(t).IsNil(err)
	test.H(t).InterfaceEql(res, 1)
}

func Test_RegisterReceiver_ExplicitPrefix(t *testing.T) {
	n := &notebook{pages: map[string]string{}}
	if err := RegisterReceiver("Journal", n); err != nil {
		t.Fatal(err)
	}
	_, err := Resolve("journal/page_count")
	test.H(t).IsNil(err)
}

func Test_RegisterReceiver_RejectsInvalidMethodShape(t *testing.T) {
	err := RegisterReceiver("bad", &badReceiver{})
	test.H(t).NotNil(err)
}

func Test_RegisterReceiver_RejectsNilAndMethodless(t *testing.T) {
	test.H(t).NotNil(RegisterReceiver("x", nil))
	test.H(t).NotNil(RegisterReceiver("y", struct{}{}))
}
