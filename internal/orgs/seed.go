package orgs

import "github.com/equibridge/backend/internal/models"

// seedOrgs is the built-in sponsor catalog. All amounts are in paise.
var seedOrgs = []models.Organization{
	{
		Name:        "ISRO",
		Field:       "Scientist",
		Description: "Indian Space Research Organisation - pushing the boundaries of space exploration and satellite technology.",
		Roadmap: []models.RoadmapStep{
			{Step: 1, Title: "B.Sc Physics / Mathematics", Duration: "3 years", Description: "Foundation in classical mechanics, electromagnetism, quantum physics, and advanced mathematics.", EstimatedFeePaise: 80_000_00, FundingAvailable: true, FundingSource: "ISRO Scholarship", FundingPaise: 40_000_00, Skills: []string{"Physics", "Mathematics", "Lab work"}},
			{Step: 2, Title: "M.Sc Astrophysics / Space Science", Duration: "2 years", Description: "Specialised study in orbital mechanics, satellite dynamics, remote sensing, and space instrumentation.", EstimatedFeePaise: 120_000_00, FundingAvailable: true, FundingSource: "ISRO RESPOND Grant", FundingPaise: 60_000_00, Skills: []string{"Astrophysics", "MATLAB", "Python"}},
			{Step: 3, Title: "Technical Certifications", Duration: "6 months", Description: "ISRO Young Scientist Programme (YUVIKA), NPTEL courses in Aerospace Engineering.", EstimatedFeePaise: 5_000_00, FundingAvailable: true, FundingSource: "Govt. AICTE Grant", FundingPaise: 5_000_00, Skills: []string{"Satellite Tech", "Remote Sensing"}},
			{Step: 4, Title: "Research Internship at ISRO", Duration: "6 months", Description: "Hands-on internship at ISRO centres (VSSC, SAC, URSC). Work on live satellite projects.", EstimatedFeePaise: 0, FundingAvailable: true, FundingSource: "ISRO Stipend", FundingPaise: 60_000_00, Skills: []string{"Research", "CAD", "Simulation"}},
			{Step: 5, Title: "Publish Research Paper", Duration: "3 months", Description: "Publish in peer-reviewed journals like Acta Astronautica or IJRS.", EstimatedFeePaise: 10_000_00, FundingAvailable: true, FundingSource: "ISRO Publication Grant", FundingPaise: 10_000_00, Skills: []string{"Research Writing", "Data Analysis"}},
			{Step: 6, Title: "ISRO Scientist/Engineer Exam", Duration: "3 months", Description: "Appear for ISRO Centralised Recruitment Board exam. Syllabus: Physics, Maths, Electronics.", EstimatedFeePaise: 500_00, Skills: []string{"Problem Solving", "Technical Aptitude"}},
			{Step: 7, Title: "Join as Scientist-SC", Duration: "Permanent", Description: "Entry-level scientist role. Work on satellite design, launch vehicles, or space applications.", Skills: []string{"All above"}},
		},
	},
	{
		Name:        "NASA",
		Field:       "Scientist",
		Description: "National Aeronautics and Space Administration - humanity's gateway to the cosmos.",
		Roadmap: []models.RoadmapStep{
			{Step: 1, Title: "B.S. in Physics / Aerospace Engineering", Duration: "4 years", Description: "Strong foundation in classical mechanics, thermodynamics, fluid dynamics, and aerospace principles.", EstimatedFeePaise: 400_000_00, FundingAvailable: true, FundingSource: "NASA Space Grant", FundingPaise: 150_000_00, Skills: []string{"Physics", "Aerospace", "CAD"}},
			{Step: 2, Title: "M.S. / Ph.D. in Aerospace or Astrophysics", Duration: "2-5 years", Description: "Graduate research in propulsion, orbital mechanics, or planetary science.", EstimatedFeePaise: 600_000_00, FundingAvailable: true, FundingSource: "NASA Fellowship", FundingPaise: 200_000_00, Skills: []string{"Research", "Python", "MATLAB"}},
			{Step: 3, Title: "NASA Internship (OSSI)", Duration: "3-6 months", Description: "NASA One Stop Shopping Initiative internship at JPL, Goddard, or Johnson Space Center.", EstimatedFeePaise: 0, FundingAvailable: true, FundingSource: "NASA Stipend", FundingPaise: 120_000_00, Skills: []string{"Mission Design", "Data Analysis"}},
			{Step: 4, Title: "GRE + TOEFL (for international)", Duration: "3 months", Description: "Standardised tests required for US graduate admissions.", EstimatedFeePaise: 25_000_00, Skills: []string{"Test Prep"}},
			{Step: 5, Title: "Research Publications", Duration: "Ongoing", Description: "Publish in Nature, Science, or Astrophysical Journal.", EstimatedFeePaise: 15_000_00, FundingAvailable: true, FundingSource: "University Grant", FundingPaise: 15_000_00, Skills: []string{"Research Writing"}},
			{Step: 6, Title: "Apply as NASA Civil Servant / Contractor", Duration: "Ongoing", Description: "Apply via USAJOBS for NASA positions. Contractors via Lockheed, Boeing, SpaceX.", Skills: []string{"All above"}},
		},
	},
	{
		Name:        "DRDO",
		Field:       "Scientist",
		Description: "Defence Research and Development Organisation - advanced defence technology for India.",
		Roadmap: []models.RoadmapStep{
			{Step: 1, Title: "B.Tech / B.E. in Engineering", Duration: "4 years", Description: "Electronics, Mechanical, or Computer Science engineering from AICTE-approved college.", EstimatedFeePaise: 200_000_00, FundingAvailable: true, FundingSource: "DRDO Scholarship", FundingPaise: 80_000_00, Skills: []string{"Engineering", "Physics", "Electronics"}},
			{Step: 2, Title: "GATE Exam", Duration: "6 months", Description: "Graduate Aptitude Test in Engineering - mandatory for DRDO Scientist B entry.", EstimatedFeePaise: 2_000_00, Skills: []string{"Problem Solving"}},
			{Step: 3, Title: "M.Tech (optional but preferred)", Duration: "2 years", Description: "Specialisation in Defence Electronics, Missiles, or Radar Systems.", EstimatedFeePaise: 100_000_00, FundingAvailable: true, FundingSource: "DRDO Research Fellowship", FundingPaise: 60_000_00, Skills: []string{"Radar", "Missiles", "Signal Processing"}},
			{Step: 4, Title: "DRDO SET Exam", Duration: "3 months", Description: "DRDO Scientist Entry Test - written exam plus interview for Scientist B position.", EstimatedFeePaise: 500_00, Skills: []string{"Technical Aptitude"}},
			{Step: 5, Title: "Join as Scientist B", Duration: "Permanent", Description: "Entry-level scientist at DRDO labs. Work on missiles, radar, electronic warfare.", Skills: []string{"All above"}},
		},
	},
	{
		Name:        "Google",
		Field:       "Software Developer",
		Description: "World's leading tech company - building products used by billions every day.",
		Roadmap: []models.RoadmapStep{
			{Step: 1, Title: "B.Tech / B.E. in Computer Science", Duration: "4 years", Description: "Core CS fundamentals: Data Structures, Algorithms, OS, DBMS, Computer Networks, OOP.", EstimatedFeePaise: 400_000_00, FundingAvailable: true, FundingSource: "Google Generation Scholarship", FundingPaise: 100_000_00, Skills: []string{"DSA", "OOP", "Databases"}},
			{Step: 2, Title: "Master DSA & System Design", Duration: "6 months", Description: "LeetCode 300+ problems, System Design (HLD/LLD), Distributed Systems concepts.", EstimatedFeePaise: 15_000_00, FundingAvailable: true, FundingSource: "Google Developer Scholarship", FundingPaise: 10_000_00, Skills: []string{"LeetCode", "System Design", "Distributed Systems"}},
			{Step: 3, Title: "Build Projects & Open Source", Duration: "6 months", Description: "Build 3-5 production-quality projects. Contribute to open source on GitHub.", EstimatedFeePaise: 5_000_00, Skills: []string{"React", "Node.js", "Docker", "Git"}},
			{Step: 4, Title: "Google STEP / SWE Internship", Duration: "3 months", Description: "Google's internship program for students. Competitive selection via online assessment and interviews.", EstimatedFeePaise: 0, FundingAvailable: true, FundingSource: "Google Intern Stipend", FundingPaise: 150_000_00, Skills: []string{"Coding", "Problem Solving"}},
			{Step: 5, Title: "Google Certifications", Duration: "3 months", Description: "Google Cloud Professional, TensorFlow Developer Certificate, Android Developer.", EstimatedFeePaise: 20_000_00, FundingAvailable: true, FundingSource: "Google Career Certificates Grant", FundingPaise: 10_000_00, Skills: []string{"Cloud", "ML", "Android"}},
			{Step: 6, Title: "SWE Interview Preparation", Duration: "3 months", Description: "Mock interviews, behavioural prep (STAR method), Google's interview process (5-6 rounds).", EstimatedFeePaise: 10_000_00, Skills: []string{"Interview Skills"}},
			{Step: 7, Title: "Join as Software Engineer L3/L4", Duration: "Permanent", Description: "Entry-level SWE at Google. Work on Search, Maps, YouTube, Cloud, or AI products.", Skills: []string{"All above"}},
		},
	},
	{
		Name:        "Infosys",
		Field:       "Software Developer",
		Description: "India's premier IT services and consulting company with global presence.",
		Roadmap: []models.RoadmapStep{
			{Step: 1, Title: "B.Tech / BCA / B.Sc CS", Duration: "3-4 years", Description: "Any CS/IT degree with 60%+ aggregate. Infosys hires from all engineering streams.", EstimatedFeePaise: 200_000_00, FundingAvailable: true, FundingSource: "Infosys Foundation Scholarship", FundingPaise: 40_000_00, Skills: []string{"Programming", "DBMS", "Networking"}},
			{Step: 2, Title: "InfyTQ Certification", Duration: "3 months", Description: "Infosys's own platform for students. Earn certification to get shortlisted directly.", EstimatedFeePaise: 0, Skills: []string{"Java", "Python", "SQL"}},
			{Step: 3, Title: "Infosys Campus Placement", Duration: "1 month", Description: "Online test (Aptitude + Coding) and HR interview. Very high hiring volume.", EstimatedFeePaise: 0, Skills: []string{"Aptitude", "Coding"}},
			{Step: 4, Title: "Infosys Springboard Training", Duration: "3 months", Description: "Mandatory training at Mysore campus. Learn Java, Agile, DevOps, and domain skills.", EstimatedFeePaise: 0, FundingAvailable: true, FundingSource: "Infosys Training Stipend", FundingPaise: 20_000_00, Skills: []string{"Java", "Agile", "DevOps"}},
			{Step: 5, Title: "Join as Systems Engineer", Duration: "Permanent", Description: "Entry-level role. Work on client projects across banking, retail, healthcare domains.", Skills: []string{"All above"}},
		},
	},
	{
		Name:        "OpenAI",
		Field:       "AI Engineer",
		Description: "Frontier AI research lab building safe and beneficial artificial general intelligence.",
		Roadmap: []models.RoadmapStep{
			{Step: 1, Title: "B.Tech / M.Tech in CS with AI/ML", Duration: "4-6 years", Description: "Strong foundation in linear algebra, statistics, probability, and machine learning theory.", EstimatedFeePaise: 500_000_00, FundingAvailable: true, FundingSource: "OpenAI Scholars Program", FundingPaise: 150_000_00, Skills: []string{"Linear Algebra", "Statistics", "Python"}},
			{Step: 2, Title: "Deep Learning Specialisation", Duration: "4 months", Description: "Coursera Deep Learning Specialisation, fast.ai, Hugging Face courses.", EstimatedFeePaise: 20_000_00, FundingAvailable: true, FundingSource: "OpenAI Education Grant", FundingPaise: 10_000_00, Skills: []string{"PyTorch", "TensorFlow", "Transformers"}},
			{Step: 3, Title: "Build AI Projects & Kaggle", Duration: "6 months", Description: "Win Kaggle competitions, build LLM apps, fine-tune models, publish on GitHub.", EstimatedFeePaise: 10_000_00, Skills: []string{"LLMs", "Fine-tuning", "RAG", "LangChain"}},
			{Step: 4, Title: "Research Papers on ArXiv", Duration: "6 months", Description: "Publish original AI research. Focus on NLP, computer vision, or reinforcement learning.", EstimatedFeePaise: 5_000_00, FundingAvailable: true, FundingSource: "University Research Grant", FundingPaise: 20_000_00, Skills: []string{"Research", "LaTeX", "Experimentation"}},
			{Step: 5, Title: "OpenAI Residency / Internship", Duration: "6 months", Description: "Highly competitive residency program. Work alongside researchers on frontier models.", EstimatedFeePaise: 0, FundingAvailable: true, FundingSource: "OpenAI Residency Stipend", FundingPaise: 200_000_00, Skills: []string{"Research", "PyTorch", "Distributed Training"}},
			{Step: 6, Title: "Join as AI Engineer / Research Scientist", Duration: "Permanent", Description: "Work on frontier models or safety research. Remote-friendly.", Skills: []string{"All above"}},
		},
	},
	{
		Name:        "Apollo Hospitals",
		Field:       "Doctor",
		Description: "India's largest integrated healthcare group with 70+ hospitals across Asia.",
		Roadmap: []models.RoadmapStep{
			{Step: 1, Title: "MBBS (Bachelor of Medicine)", Duration: "5.5 years", Description: "MCI-recognised MBBS from government or private medical college. Includes 1-year internship.", EstimatedFeePaise: 2_000_000_00, FundingAvailable: true, FundingSource: "Apollo Foundation Scholarship", FundingPaise: 300_000_00, Skills: []string{"Anatomy", "Physiology", "Clinical Skills"}},
			{Step: 2, Title: "NEET-PG Preparation", Duration: "1 year", Description: "National Eligibility cum Entrance Test for postgraduate medical admissions.", EstimatedFeePaise: 50_000_00, Skills: []string{"Medicine", "Surgery", "Pharmacology"}},
			{Step: 3, Title: "MD / MS Specialisation", Duration: "3 years", Description: "Postgraduate specialisation in General Medicine, Surgery, Cardiology, Orthopaedics.", EstimatedFeePaise: 1_500_000_00, FundingAvailable: true, FundingSource: "Apollo Medical Education Grant", FundingPaise: 200_000_00, Skills: []string{"Specialisation", "Clinical Research"}},
			{Step: 4, Title: "Apollo Fellowship / Residency", Duration: "1-2 years", Description: "Clinical fellowship at Apollo hospitals. Hands-on training in super-speciality departments.", EstimatedFeePaise: 0, FundingAvailable: true, FundingSource: "Apollo Fellowship Stipend", FundingPaise: 120_000_00, Skills: []string{"Clinical Practice", "Patient Management"}},
			{Step: 5, Title: "Medical Council Registration", Duration: "1 month", Description: "Register with State Medical Council and National Medical Commission.", EstimatedFeePaise: 5_000_00, Skills: []string{"Compliance"}},
			{Step: 6, Title: "Join Apollo as Consultant", Duration: "Permanent", Description: "Consultant physician or surgeon at Apollo.", Skills: []string{"All above"}},
		},
	},
	{
		Name:        "Manipal Hospitals",
		Field:       "Physiotherapist",
		Description: "Leading physiotherapy and rehabilitation services across India.",
		Roadmap: []models.RoadmapStep{
			{Step: 1, Title: "BPT - Bachelor of Physiotherapy", Duration: "4.5 years", Description: "4-year program plus 6-month internship. Covers anatomy, biomechanics, exercise therapy, electrotherapy.", EstimatedFeePaise: 400_000_00, FundingAvailable: true, FundingSource: "Manipal Foundation Scholarship", FundingPaise: 80_000_00, Skills: []string{"Anatomy", "Biomechanics", "Manual Therapy"}},
			{Step: 2, Title: "MPT Specialisation", Duration: "2 years", Description: "Master of Physiotherapy in Sports, Neuro, Ortho, or Cardiopulmonary.", EstimatedFeePaise: 200_000_00, FundingAvailable: true, FundingSource: "Manipal PG Grant", FundingPaise: 60_000_00, Skills: []string{"Specialisation", "Clinical Research"}},
			{Step: 3, Title: "Manipal Clinical Internship", Duration: "6 months", Description: "Rotational internship across Manipal's departments: ortho, neuro, ICU, sports.", EstimatedFeePaise: 0, FundingAvailable: true, FundingSource: "Manipal Internship Stipend", FundingPaise: 30_000_00, Skills: []string{"Patient Care", "Rehabilitation"}},
			{Step: 4, Title: "IAP / WCPT Certification", Duration: "3 months", Description: "Indian Association of Physiotherapists membership plus WCPT international certification.", EstimatedFeePaise: 10_000_00, Skills: []string{"Professional Certification"}},
			{Step: 5, Title: "Join Manipal as Physiotherapist", Duration: "Permanent", Description: "Clinical physiotherapist at Manipal. Specialise in sports rehab, neuro, or geriatric care.", Skills: []string{"All above"}},
		},
	},
}
