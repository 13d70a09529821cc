// Package curriculum is the static monthly quiz and task content store.
// Each field of study gets a sequence of months: five multiple-choice
// questions plus one practical task. Read-only to the rest of the system.
package curriculum

import "sort"

type Question struct {
	Q       string   `json:"q"`
	Options []string `json:"options"`
	// Answer is the index of the correct option. Stripped before content
	// is sent to clients.
	Answer int `json:"answer"`
}

type Task struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Deliverable string   `json:"deliverable"`
	Skills      []string `json:"skills"`
}

type Month struct {
	Month int        `json:"month"`
	Topic string     `json:"topic"`
	Quiz  []Question `json:"quiz"`
	Task  Task       `json:"task"`
}

const defaultField = "Software Developer"

// ForField returns the monthly curriculum for a field, falling back to the
// software-developer track for unknown fields.
func ForField(field string) []Month {
	if months, ok := monthlyCurriculum[field]; ok {
		return months
	}
	return monthlyCurriculum[defaultField]
}

// Fields lists every field with its own curriculum, sorted.
func Fields() []string {
	out := make([]string, 0, len(monthlyCurriculum))
	for f := range monthlyCurriculum {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

var monthlyCurriculum = map[string][]Month{
	"Scientist": {
		{
			Month: 1,
			Topic: "Physics Foundations",
			Quiz: []Question{
				{Q: "What is the SI unit of force?", Options: []string{"Joule", "Newton", "Pascal", "Watt"}, Answer: 1},
				{Q: "Which law states F = ma?", Options: []string{"Newton's 1st", "Newton's 2nd", "Newton's 3rd", "Hooke's Law"}, Answer: 1},
				{Q: "What is the speed of light in vacuum?", Options: []string{"3×10⁶ m/s", "3×10⁸ m/s", "3×10¹⁰ m/s", "3×10⁴ m/s"}, Answer: 1},
				{Q: "Which particle has no charge?", Options: []string{"Proton", "Electron", "Neutron", "Positron"}, Answer: 2},
				{Q: "What does E=mc² represent?", Options: []string{"Kinetic energy", "Mass-energy equivalence", "Potential energy", "Thermal energy"}, Answer: 1},
			},
			Task: Task{
				Title:       "Build a Simple Pendulum Simulator",
				Description: "Create a script that simulates a simple pendulum. Calculate the period T = 2π√(L/g) for lengths 0.5m, 1m and 2m and plot the results. Submit your code and a screenshot of the output.",
				Deliverable: "Script + output screenshot",
				Skills:      []string{"Python", "Physics", "Matplotlib"},
			},
		},
		{
			Month: 2,
			Topic: "Mathematics & Calculus",
			Quiz: []Question{
				{Q: "What is the derivative of sin(x)?", Options: []string{"-cos(x)", "cos(x)", "tan(x)", "-sin(x)"}, Answer: 1},
				{Q: "∫x² dx = ?", Options: []string{"x³", "x³/3 + C", "2x", "x²/2"}, Answer: 1},
				{Q: "What is the value of e (Euler's number)?", Options: []string{"2.718", "3.141", "1.618", "2.303"}, Answer: 0},
				{Q: "Which matrix operation is NOT always defined?", Options: []string{"Addition", "Scalar multiplication", "Matrix multiplication", "Transpose"}, Answer: 2},
				{Q: "What is the gradient of a scalar field?", Options: []string{"A scalar", "A vector", "A matrix", "A tensor"}, Answer: 1},
			},
			Task: Task{
				Title:       "Solve Orbital Mechanics Problem",
				Description: "Calculate the orbital period of a satellite at 400km altitude (ISS orbit) using Kepler's third law, then the orbital velocity. Submit your calculations with code.",
				Deliverable: "Notebook or script with results",
				Skills:      []string{"Python", "Mathematics", "Orbital Mechanics"},
			},
		},
		{
			Month: 3,
			Topic: "Astrophysics Basics",
			Quiz: []Question{
				{Q: "What is a light-year?", Options: []string{"Time", "Distance", "Speed", "Mass"}, Answer: 1},
				{Q: "Which is the closest star to Earth (after Sun)?", Options: []string{"Sirius", "Proxima Centauri", "Betelgeuse", "Vega"}, Answer: 1},
				{Q: "What causes a solar eclipse?", Options: []string{"Earth's shadow on Moon", "Moon's shadow on Earth", "Sun's rotation", "Earth's rotation"}, Answer: 1},
				{Q: "What is the Hubble constant used for?", Options: []string{"Measuring star mass", "Universe expansion rate", "Black hole radius", "Gravity constant"}, Answer: 1},
				{Q: "What type of radiation does a pulsar emit?", Options: []string{"Visible light", "Radio waves", "X-rays only", "Gamma rays only"}, Answer: 1},
			},
			Task: Task{
				Title:       "Star Classification Project",
				Description: "Download the HYG star database and classify stars by spectral type (O, B, A, F, G, K, M). Create a Hertzsprung-Russell diagram. Submit code + diagram.",
				Deliverable: "Script + H-R diagram image",
				Skills:      []string{"Python", "Data Analysis", "Astrophysics"},
			},
		},
	},
	"Software Developer": {
		{
			Month: 1,
			Topic: "Data Structures & Algorithms",
			Quiz: []Question{
				{Q: "What is the time complexity of binary search?", Options: []string{"O(n)", "O(log n)", "O(n²)", "O(1)"}, Answer: 1},
				{Q: "Which data structure uses LIFO?", Options: []string{"Queue", "Stack", "Heap", "Tree"}, Answer: 1},
				{Q: "What is a hash collision?", Options: []string{"Two keys map to same index", "Hash function error", "Memory overflow", "Null pointer"}, Answer: 0},
				{Q: "Which sorting algorithm has O(n log n) average case?", Options: []string{"Bubble Sort", "Insertion Sort", "Merge Sort", "Selection Sort"}, Answer: 2},
				{Q: "What does DFS stand for?", Options: []string{"Data File System", "Depth First Search", "Dynamic Function Stack", "Direct File Storage"}, Answer: 1},
			},
			Task: Task{
				Title:       "Implement a LRU Cache",
				Description: "Build a Least Recently Used cache supporting get(key) and put(key, value) in O(1) time, using a doubly linked list plus hashmap. Write unit tests. Submit the repo link.",
				Deliverable: "Repo link with code + tests",
				Skills:      []string{"DSA", "Problem Solving"},
			},
		},
		{
			Month: 2,
			Topic: "System Design Fundamentals",
			Quiz: []Question{
				{Q: "What does horizontal scaling mean?", Options: []string{"Bigger machines", "More machines", "Faster disks", "More RAM"}, Answer: 1},
				{Q: "What is a load balancer for?", Options: []string{"Caching", "Distributing traffic", "Storing sessions", "Compressing data"}, Answer: 1},
				{Q: "Which database type fits unstructured data best?", Options: []string{"Relational", "Document", "Columnar", "Graph"}, Answer: 1},
				{Q: "What does CAP theorem trade off?", Options: []string{"Cost, API, Performance", "Consistency, Availability, Partition tolerance", "Caching, Access, Persistence", "CPU, ALU, Pipeline"}, Answer: 1},
				{Q: "What is a CDN used for?", Options: []string{"Database sharding", "Serving content near users", "Encrypting traffic", "Job queues"}, Answer: 1},
			},
			Task: Task{
				Title:       "Design a URL Shortener",
				Description: "Write a design document for a URL shortener serving 100M requests/day: API, data model, key generation, caching and scaling strategy.",
				Deliverable: "Design document",
				Skills:      []string{"System Design", "Distributed Systems"},
			},
		},
		{
			Month: 3,
			Topic: "Databases & Backend",
			Quiz: []Question{
				{Q: "What does an index speed up?", Options: []string{"Writes", "Reads", "Backups", "Migrations"}, Answer: 1},
				{Q: "What is a transaction's atomicity?", Options: []string{"All or nothing", "Fast commits", "No locks", "Parallel writes"}, Answer: 0},
				{Q: "Which isolation anomaly does a dirty read describe?", Options: []string{"Reading uncommitted data", "Lost update", "Phantom row", "Deadlock"}, Answer: 0},
				{Q: "What is an N+1 query problem?", Options: []string{"One query per row", "Too many indexes", "Missing primary key", "Slow joins"}, Answer: 0},
				{Q: "What does a foreign key enforce?", Options: []string{"Uniqueness", "Referential integrity", "Ordering", "Encryption"}, Answer: 1},
			},
			Task: Task{
				Title:       "Build a REST API with Persistence",
				Description: "Build a small REST API backed by a relational database with at least one transactional endpoint and integration tests.",
				Deliverable: "Repo link with API + tests",
				Skills:      []string{"SQL", "REST", "Testing"},
			},
		},
	},
}
