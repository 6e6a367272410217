// Package proposal turns a voice-call transcript into a branded business
// proposal: markdown text, an HTML preview and a paginated PDF.
//
// # Quick Start
//
// Create a generator and generate from a transcript:
//
//	gen, err := proposal.NewGenerator()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := gen.Generate(ctx, proposal.Input{
//	    Transcript: "We need an AI chatbot, budget around $20k, live in 3 months.",
//	    VoiceID:    "vx-123",
//	    ClientName: "Acme Corp",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("proposal.pdf", result.PDF, 0644)
//
// result.Document holds the category, the extracted facts and the filled
// markdown. Set Input.HTML to also get the HTML preview, and Input.SkipPDF
// to stop after synthesis.
//
// # Pipeline
//
//  1. Synthesis: the transcript is classified into a category (AI, Mobile,
//     Enterprise, Web, General), its budget and timeline are extracted, and
//     the category template is filled. Synthesis never fails; missing facts
//     fall back to fixed wording.
//  2. Parsing: the markdown subset (#, ##, ### headings, "- " bullets,
//     **bold**, blank lines) becomes one block per line.
//  3. Layout: blocks flow onto a Cover page and then Content pages, each
//     with its own frame and background.
//  4. Serialization: pages are written as PDF 1.4 with the standard
//     Helvetica fonts.
//
// Render runs steps 2 to 4 on markdown you already have.
//
// # Configuration
//
// Use functional options to customize the generator:
//
//	gen, err := proposal.NewGenerator(
//	    proposal.WithBrand(proposal.Brand{Name: "NORTHWIND", Tagline: "STUDIO"}),
//	    proposal.WithAssetPath("/path/to/custom/assets"),
//	    proposal.WithDate("auto:long"),
//	)
//
// A custom asset directory may hold proposals/{category}.md, styles/*.css
// and templates/*.html; missing files fall back to the embedded ones.
//
// # Reproducibility
//
// Without WithCreationTime the PDF carries no timestamp, so the same
// markdown and Meta always produce the same bytes.
//
// # Concurrency
//
// A Generator is safe for concurrent use. GeneratorPool bounds how many
// generations run at once for batch work.
package proposal
