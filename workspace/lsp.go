package workspace

import (
	"context"
	"net/url"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"github.com/dhamidi/sol/solidity/cst"
)

const lsName = "sol"

type LSPServer struct {
	opts    []Option
	poll    time.Duration
	version string

	handler protocol.Handler
	server  *server.Server

	mu        sync.Mutex
	workspace *Workspace
	watcher   *FileWatcher
	notify    glsp.NotifyFunc
}

// NewLSPServer creates a language server. A positive poll interval also
// watches the workspace root for changes made outside the editor.
func NewLSPServer(version string, poll time.Duration, opts ...Option) *LSPServer {
	ls := &LSPServer{
		opts:    opts,
		poll:    poll,
		version: version,
	}

	ls.handler = protocol.Handler{
		Initialize:                 ls.initialize,
		Initialized:                ls.initialized,
		Shutdown:                   ls.shutdown,
		SetTrace:                   ls.setTrace,
		TextDocumentDidOpen:        ls.textDocumentDidOpen,
		TextDocumentDidChange:      ls.textDocumentDidChange,
		TextDocumentDidClose:       ls.textDocumentDidClose,
		TextDocumentDidSave:        ls.textDocumentDidSave,
		TextDocumentDocumentSymbol: ls.textDocumentDocumentSymbol,
	}

	ls.server = server.NewServer(&ls.handler, lsName, false)

	return ls
}

func (ls *LSPServer) RunStdio() error {
	return ls.server.RunStdio()
}

func (ls *LSPServer) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	rootDir := "."
	if params.RootPath != nil && *params.RootPath != "" {
		rootDir = *params.RootPath
	} else if params.RootURI != nil && *params.RootURI != "" {
		if path, err := uriToPath(*params.RootURI); err == nil {
			rootDir = path
		}
	}

	ls.mu.Lock()
	ls.workspace = New(rootDir, ls.opts...)
	ls.mu.Unlock()
	ls.workspace.log.Infof("initialize: root %s", rootDir)

	capabilities := ls.handler.CreateServerCapabilities()

	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    syncKindPtr(protocol.TextDocumentSyncKindFull),
		Save: &protocol.SaveOptions{
			IncludeText: boolPtr(true),
		},
	}
	capabilities.DocumentSymbolProvider = true

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &ls.version,
		},
	}, nil
}

func (ls *LSPServer) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	ls.mu.Lock()
	ls.notify = ctx.Notify
	ls.mu.Unlock()

	w := ls.workspace
	if err := w.ScanAll(context.Background()); err != nil {
		w.log.Warningf("initial scan: %s", err)
	}
	for _, doc := range w.Documents() {
		if len(doc.Output.Errors()) > 0 {
			ls.publish(doc.Path, doc)
		}
	}

	if ls.poll > 0 {
		ls.mu.Lock()
		ls.watcher = NewFileWatcher(w, ls.poll, func(e Event) {
			ls.publish(e.Path, e.Document)
		})
		ls.watcher.Start()
		ls.mu.Unlock()
	}
	return nil
}

func (ls *LSPServer) shutdown(ctx *glsp.Context) error {
	ls.mu.Lock()
	watcher := ls.watcher
	ls.watcher = nil
	ls.mu.Unlock()

	if watcher != nil {
		watcher.Stop()
	}
	return nil
}

func (ls *LSPServer) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (ls *LSPServer) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	doc := ls.workspace.OpenFile(path, params.TextDocument.Text, params.TextDocument.Version)
	ls.publishTo(ctx.Notify, params.TextDocument.URI, doc)
	return nil
}

func (ls *LSPServer) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	if len(params.ContentChanges) > 0 {
		change := params.ContentChanges[len(params.ContentChanges)-1]
		if textChange, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
			doc := ls.workspace.UpdateFile(path, textChange.Text, params.TextDocument.Version)
			ls.publishTo(ctx.Notify, params.TextDocument.URI, doc)
		}
	}
	return nil
}

func (ls *LSPServer) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	ls.publishTo(ctx.Notify, params.TextDocument.URI, ls.workspace.CloseFile(path))
	return nil
}

func (ls *LSPServer) textDocumentDidSave(ctx *glsp.Context, params *protocol.DidSaveTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil
	}

	var doc *Document
	if params.Text != nil {
		var version int32
		if prev := ls.workspace.Document(path); prev != nil {
			version = prev.Version
		}
		doc = ls.workspace.UpdateFile(path, *params.Text, version)
	} else {
		doc, err = ls.workspace.ScanFile(path)
		if err != nil {
			ls.workspace.log.Warningf("%s", err)
			return nil
		}
	}
	ls.publishTo(ctx.Notify, params.TextDocument.URI, doc)
	return nil
}

func (ls *LSPServer) textDocumentDocumentSymbol(ctx *glsp.Context, params *protocol.DocumentSymbolParams) (any, error) {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil, nil
	}

	doc := ls.workspace.Document(path)
	if doc == nil {
		if doc, err = ls.workspace.ScanFile(path); err != nil {
			return nil, nil
		}
	}
	ls.workspace.log.Debugf("documentSymbol: %s", path)
	return DocumentSymbols(doc), nil
}

// publish sends diagnostics for path through the notifier saved at
// initialization. A nil doc clears them.
func (ls *LSPServer) publish(path string, doc *Document) {
	ls.mu.Lock()
	notify := ls.notify
	ls.mu.Unlock()

	ls.publishTo(notify, pathToURI(path), doc)
}

func (ls *LSPServer) publishTo(notify glsp.NotifyFunc, uri protocol.DocumentUri, doc *Document) {
	if notify == nil {
		return
	}
	params := protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: []protocol.Diagnostic{},
	}
	if doc != nil {
		params.Diagnostics = Diagnostics(doc)
		if doc.Version > 0 {
			version := protocol.UInteger(doc.Version)
			params.Version = &version
		}
	}
	notify(protocol.ServerTextDocumentPublishDiagnostics, params)
}

// Diagnostics converts the parse errors of doc to LSP diagnostics. Each one
// covers the first character at the error offset.
func Diagnostics(doc *Document) []protocol.Diagnostic {
	src := doc.Source()
	lines := cst.NewLineIndex(src)
	severity := protocol.DiagnosticSeverityError
	source := lsName

	diags := make([]protocol.Diagnostic, 0, len(doc.Output.Errors()))
	for _, e := range doc.Output.Errors() {
		end := e.Offset
		if end < len(src) && src[end] != '\n' && src[end] != '\r' {
			end++
		}
		diags = append(diags, protocol.Diagnostic{
			Range:    toProtocolRange(lines, cst.TextRange{Start: e.Offset, End: end}),
			Severity: &severity,
			Source:   &source,
			Message:  e.Error(),
		})
	}
	return diags
}

// DocumentSymbols converts the outline of doc to LSP document symbols.
func DocumentSymbols(doc *Document) []protocol.DocumentSymbol {
	return toProtocolSymbols(cst.NewLineIndex(doc.Source()), doc.Symbols())
}

func toProtocolSymbols(lines *cst.LineIndex, symbols []Symbol) []protocol.DocumentSymbol {
	out := make([]protocol.DocumentSymbol, 0, len(symbols))
	for _, s := range symbols {
		out = append(out, protocol.DocumentSymbol{
			Name:           s.Name,
			Kind:           toProtocolKind(s.Kind),
			Range:          toProtocolRange(lines, s.Range),
			SelectionRange: toProtocolRange(lines, s.Selection),
			Children:       toProtocolSymbols(lines, s.Children),
		})
	}
	return out
}

func toProtocolKind(kind SymbolKind) protocol.SymbolKind {
	switch kind {
	case SymbolContract:
		return protocol.SymbolKindClass
	case SymbolInterface:
		return protocol.SymbolKindInterface
	case SymbolLibrary:
		return protocol.SymbolKindModule
	case SymbolFunction:
		return protocol.SymbolKindFunction
	case SymbolConstructor:
		return protocol.SymbolKindConstructor
	case SymbolModifier:
		return protocol.SymbolKindMethod
	case SymbolEvent:
		return protocol.SymbolKindEvent
	case SymbolError:
		return protocol.SymbolKindObject
	case SymbolStruct:
		return protocol.SymbolKindStruct
	case SymbolEnum:
		return protocol.SymbolKindEnum
	case SymbolType:
		return protocol.SymbolKindTypeParameter
	case SymbolConstant:
		return protocol.SymbolKindConstant
	default:
		return protocol.SymbolKindVariable
	}
}

func toProtocolRange(lines *cst.LineIndex, r cst.TextRange) protocol.Range {
	return protocol.Range{
		Start: toProtocolPosition(lines, r.Start),
		End:   toProtocolPosition(lines, r.End),
	}
}

func toProtocolPosition(lines *cst.LineIndex, offset int) protocol.Position {
	return protocol.Position{
		Line:      protocol.UInteger(lines.Position(offset).Line - 1),
		Character: protocol.UInteger(lines.UTF16Column(offset)),
	}
}

func uriToPath(uri string) (string, error) {
	if strings.HasPrefix(uri, "file://") {
		parsed, err := url.Parse(uri)
		if err != nil {
			return "", err
		}
		return filepath.Clean(parsed.Path), nil
	}
	return uri, nil
}

func pathToURI(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	return (&url.URL{Scheme: "file", Path: filepath.ToSlash(path)}).String()
}

func boolPtr(b bool) *bool {
	return &b
}

func syncKindPtr(kind protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &kind
}
