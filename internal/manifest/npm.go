package manifest

import (
	"encoding/json"

	"github.com/projectbridge/reposcan/internal/errors"
)

// npmPackages maps npm package names to canonical entries.
var npmPackages = map[string]Entry{
	"react":          {Name: "React", Category: "framework"},
	"react-native":   {Name: "React Native", Category: "framework"},
	"next":           {Name: "Next.js", Category: "framework"},
	"vue":            {Name: "Vue", Category: "framework"},
	"nuxt":           {Name: "Nuxt", Category: "framework"},
	"svelte":         {Name: "Svelte", Category: "framework"},
	"@angular/core":  {Name: "Angular", Category: "framework"},
	"express":        {Name: "Express", Category: "framework"},
	"fastify":        {Name: "Fastify", Category: "framework"},
	"gatsby":         {Name: "Gatsby", Category: "framework"},
	"remix":          {Name: "Remix", Category: "framework"},
	"@nestjs/core":   {Name: "NestJS", Category: "framework"},
	"koa":            {Name: "Koa", Category: "framework"},
	"tailwindcss":    {Name: "Tailwind CSS", Category: "framework"},
	"prisma":         {Name: "Prisma", Category: "tool"},
	"mongoose":       {Name: "Mongoose", Category: "tool"},
	"sequelize":      {Name: "Sequelize", Category: "tool"},
	"jest":           {Name: "Jest", Category: "tool"},
	"mocha":          {Name: "Mocha", Category: "tool"},
	"webpack":        {Name: "Webpack", Category: "tool"},
	"vite":           {Name: "Vite", Category: "tool"},
	"typescript":     {Name: "TypeScript", Category: "language"},
	"three":          {Name: "Three.js", Category: "framework"},
	"electron":       {Name: "Electron", Category: "framework"},
	"socket.io":      {Name: "Socket.IO", Category: "framework"},
	"graphql":        {Name: "GraphQL", Category: "tool"},
	"@apollo/client": {Name: "Apollo", Category: "framework"},
	"redis":          {Name: "Redis", Category: "tool"},
	"pg":             {Name: "PostgreSQL", Category: "tool"},
	"mongodb":        {Name: "MongoDB", Category: "tool"},
	"supabase":       {Name: "Supabase", Category: "tool"},
	"firebase":       {Name: "Firebase", Category: "tool"},
}

// npmParser extracts dependency names from package.json.
type npmParser struct{}

func (npmParser) Filename() string {
	return "package.json"
}

func (npmParser) Parse(data []byte) ([]Entry, error) {
	var pkg struct {
		Dependencies    map[string]string `json:"dependencies"`
		DevDependencies map[string]string `json:"devDependencies"`
	}

	if err := json.Unmarshal(data, &pkg); err != nil {
		return nil, errors.New(err)
	}

	var identifiers []string
	for name := range pkg.Dependencies {
		identifiers = append(identifiers, name)
	}

	for name := range pkg.DevDependencies {
		identifiers = append(identifiers, name)
	}

	return mapIdentifiers(identifiers, npmPackages), nil
}
