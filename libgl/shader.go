package libgl

import (
	"log"
	"reflect"
	"strings"

	"quad-collide/libio"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Shader is a single compiled stage. It only lives until it is linked.
type Shader struct {
	glId  uint32
	name  string
	stage uint32
}

// CompileShader compiles the file at path as the given stage.
// Compile errors are logged and the shader is returned regardless.
func CompileShader(path string, stage uint32) *Shader {
	return CompileShaderSource(path, libio.ReadText(path), stage)
}

func CompileShaderSource(name, source string, stage uint32) *Shader {
	id := gl.CreateShader(stage)
	cStrs, free := gl.Strs(source + "\x00")
	gl.ShaderSource(id, 1, cStrs, nil)
	free()
	gl.CompileShader(id)

	var ok int32
	gl.GetShaderiv(id, gl.COMPILE_STATUS, &ok)
	if ok == gl.FALSE {
		log.Printf("[ERROR]: %v: %v\n", name, readShaderInfoLog(id))
	}

	return &Shader{
		glId:  id,
		name:  name,
		stage: stage,
	}
}

func (shader *Shader) Id() uint32 {
	return shader.glId
}

func (shader *Shader) Delete() {
	if shader.glId == 0 {
		return
	}
	gl.DeleteShader(shader.glId)
	shader.glId = 0
}

func readShaderInfoLog(id uint32) string {
	var logLength int32
	gl.GetShaderiv(id, gl.INFO_LOG_LENGTH, &logLength)
	if logLength == 0 {
		return ""
	}

	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetShaderInfoLog(id, logLength, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00\r\n")
}

func readProgramInfoLog(id uint32) string {
	var logLength int32
	gl.GetProgramiv(id, gl.INFO_LOG_LENGTH, &logLength)
	if logLength == 0 {
		return ""
	}

	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetProgramInfoLog(id, logLength, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00\r\n")
}

type Program struct {
	glId             uint32
	name             string
	uniformLocations map[string]int32
}

// LinkProgram links vert and frag into a new program and deletes both shaders.
// A program that fails to link or validate is still returned.
func LinkProgram(vert, frag *Shader) *Program {
	id := gl.CreateProgram()
	gl.AttachShader(id, vert.Id())
	gl.AttachShader(id, frag.Id())
	gl.LinkProgram(id)
	gl.ValidateProgram(id)

	name := vert.name + "+" + frag.name
	var ok int32
	gl.GetProgramiv(id, gl.LINK_STATUS, &ok)
	if ok == gl.FALSE {
		log.Printf("[WARNING]: failed to link %v, log: %v\n", name, readProgramInfoLog(id))
	} else {
		gl.GetProgramiv(id, gl.VALIDATE_STATUS, &ok)
		if ok == gl.FALSE {
			log.Printf("[WARNING]: failed to validate %v, log: %v\n", name, readProgramInfoLog(id))
		}
	}

	gl.DetachShader(id, vert.Id())
	gl.DetachShader(id, frag.Id())
	vert.Delete()
	frag.Delete()

	return &Program{
		glId:             id,
		name:             name,
		uniformLocations: map[string]int32{},
	}
}

func (prog *Program) Id() uint32 {
	return prog.glId
}

func (prog *Program) Bind() {
	State.UseProgram(prog.glId)
}

func (prog *Program) Delete() {
	if prog.glId == 0 {
		return
	}
	State.Forget(prog.glId, 0, 0, 0)
	gl.DeleteProgram(prog.glId)
	prog.glId = 0
}

func (prog *Program) GetUniformLocation(name string) int32 {
	if location, ok := prog.uniformLocations[name]; ok {
		return location
	}

	location := gl.GetUniformLocation(prog.glId, gl.Str(name+"\x00"))
	prog.uniformLocations[name] = location

	if location == -1 {
		log.Printf("%v shader: could not get location of %q\n", prog.name, name)
	}

	return location
}

// SetUniform uploads value to the named uniform. The program must be bound.
func (prog *Program) SetUniform(name string, value any) {
	location := prog.GetUniformLocation(name)
	if location == -1 {
		return
	}
	setUniformAny(location, value)
}

func setUniformAny(location int32, value any) {
	for refVal := reflect.ValueOf(value); refVal.Kind() == reflect.Ptr; refVal = reflect.ValueOf(value) {
		value = refVal.Elem().Interface()
	}

	switch v := value.(type) {
	case bool:
		if v {
			gl.Uniform1i(location, 1)
		} else {
			gl.Uniform1i(location, 0)
		}
	case float32:
		gl.Uniform1f(location, v)
	case float64:
		gl.Uniform1f(location, float32(v))
	case int:
		gl.Uniform1i(location, int32(v))
	case int32:
		gl.Uniform1i(location, v)
	case uint32:
		gl.Uniform1ui(location, v)
	case mgl32.Vec2:
		gl.Uniform2f(location, v.X(), v.Y())
	case mgl32.Vec3:
		gl.Uniform3f(location, v.X(), v.Y(), v.Z())
	case mgl32.Vec4:
		gl.Uniform4f(location, v.X(), v.Y(), v.Z(), v.W())
	case mgl32.Mat4:
		gl.UniformMatrix4fv(location, 1, false, &v[0])
	default:
		log.Panicf("Unsupported uniform type %T", value)
	}
}
