package discovery

const handbookSource = "Silicon Guide Handbook"

// DefaultTopics returns the keyword groups in evaluation order.
func DefaultTopics() []Topic {
	return []Topic{
		{
			Name:     "materials",
			Keywords: []string{"physics", "material", "silicon"},
			Results: []Result{
				{
					Title:       "Semiconductor Physics & Materials Science",
					Description: "Comprehensive chapter covering semiconductor physics fundamentals, including band theory, carrier transport, and material properties.",
					URL:         "/handbook/ch3",
					Source:      handbookSource,
					Type:        TypeHandbook,
					Relevance:   95,
				},
				{
					Title:       "Advanced Silicon Materials for Next-Generation Devices",
					Description: "This research paper explores novel silicon-based materials and structures for improving semiconductor device performance beyond traditional scaling approaches.",
					URL:         "https://example.com/advanced-silicon-materials",
					Source:      "Nature Electronics",
					Type:        TypePaper,
					Date:        "2023-09-22",
					Relevance:   90,
				},
			},
		},
		{
			Name:     "devices",
			Keywords: []string{"transistor", "device", "mosfet"},
			Results: []Result{
				{
					Title:       "Core Semiconductor Devices",
					Description: "Detailed explanation of fundamental semiconductor devices including diodes, BJTs, and MOSFETs, with analysis of their operating principles.",
					URL:         "/handbook/ch4",
					Source:      handbookSource,
					Type:        TypeHandbook,
					Relevance:   95,
				},
				{
					Title:       "Evolution of Transistor Architectures: From Planar to 3D",
					Description: "A historical and technical overview of how transistor designs have evolved from simple planar structures to complex 3D architectures like FinFETs and Gate-All-Around devices.",
					URL:         "https://example.com/transistor-evolution",
					Source:      "Semiconductor Engineering",
					Type:        TypeWeb,
					Date:        "2023-08-10",
					Relevance:   88,
				},
			},
		},
		{
			Name:     "digital design",
			Keywords: []string{"design", "circuit", "logic"},
			Results: []Result{
				{
					Title:       "Introduction to Digital Logic & Circuits",
					Description: "Foundational concepts in digital logic design, including Boolean algebra, logic gates, and basic combinatorial circuits.",
					URL:         "/handbook/ch5",
					Source:      handbookSource,
					Type:        TypeHandbook,
					Relevance:   92,
				},
				{
					Title:       "Modern Digital Circuit Design Techniques",
					Description: "This article covers advanced techniques in digital circuit design, focusing on power efficiency, high performance, and design for manufacturability.",
					URL:         "https://example.com/digital-design-techniques",
					Source:      "ACM Digital Library",
					Type:        TypePaper,
					Date:        "2023-07-15",
					Relevance:   85,
				},
			},
		},
		{
			Name:     "manufacturing",
			Keywords: []string{"manufacturing", "fabrication", "process"},
			Results: []Result{
				{
					Title:       "Wafer Fabrication Overview & Cleanrooms",
					Description: "Comprehensive introduction to semiconductor manufacturing processes, cleanroom technology, and wafer fabrication techniques.",
					URL:         "/handbook/ch14",
					Source:      handbookSource,
					Type:        TypeHandbook,
					Relevance:   94,
				},
				{
					Title:       "TSMC Announces 2nm Process Technology Roadmap",
					Description: "TSMC has revealed its roadmap for 2nm semiconductor manufacturing technology, with risk production scheduled to begin in late 2025.",
					URL:         "https://example.com/tsmc-2nm-announcement",
					Source:      "Semiconductor Industry News",
					Type:        TypeNews,
					Date:        "2023-10-28",
					Relevance:   88,
				},
			},
		},
		{
			Name:     "analog",
			Keywords: []string{"analog", "amplifier", "signal"},
			Results: []Result{
				{
					Title:       "Introduction to Analog Circuits",
					Description: "Fundamentals of analog circuit design, including basic concepts, semiconductor devices in analog applications, and key circuit topologies.",
					URL:         "/handbook/ch6",
					Source:      handbookSource,
					Type:        TypeHandbook,
					Relevance:   93,
				},
				{
					Title:       "Noise Reduction Techniques in Analog Circuit Design",
					Description: "A detailed analysis of various noise sources in analog circuits and practical techniques for minimizing their impact on circuit performance.",
					URL:         "https://example.com/analog-noise-reduction",
					Source:      "IEEE Journal of Solid-State Circuits",
					Type:        TypePaper,
					Date:        "2023-06-12",
					Relevance:   87,
				},
			},
		},
	}
}

// generalResults stand in when no topic matches.
func generalResults() []Result {
	return []Result{
		{
			Title:       "Welcome & The Modern Semiconductor Era",
			Description: "Introductory chapter providing an overview of semiconductors, their importance, and the structure of the Silicon Guide handbook.",
			URL:         "/handbook/ch1",
			Source:      handbookSource,
			Type:        TypeHandbook,
			Relevance:   80,
		},
		{
			Title:       "Semiconductor Industry Outlook 2024",
			Description: "Analysis of current trends, challenges, and opportunities in the global semiconductor industry, with forecasts for key market segments.",
			URL:         "https://example.com/semiconductor-outlook-2024",
			Source:      "McKinsey Insights",
			Type:        TypeWeb,
			Date:        "2023-12-05",
			Relevance:   75,
		},
		{
			Title:       "The Impact of AI on Semiconductor Design and Manufacturing",
			Description: "This report examines how artificial intelligence is transforming semiconductor design processes, manufacturing techniques, and testing methodologies.",
			URL:         "https://example.com/ai-semiconductor-impact",
			Source:      "Deloitte Technology Review",
			Type:        TypeWeb,
			Date:        "2023-11-30",
			Relevance:   70,
		},
	}
}

func baseResults() []Result {
	return []Result{
		{
			Title:       "Recent Advances in Semiconductor Technology",
			Description: "An overview of the latest developments in semiconductor manufacturing, design, and applications, with a focus on emerging technologies and industry trends.",
			URL:         "https://example.com/semiconductor-advances",
			Source:      "IEEE Spectrum",
			Type:        TypeWeb,
			Date:        "2023-11-15",
			Relevance:   85,
		},
	}
}
